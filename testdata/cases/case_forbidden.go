package cases

func describeDataMode(dataMode bool) string {
	switch dataMode {
	case true:
		return "data"
	case false:
		return "no data"
	}
	return "unreachable"
}
