package cases

func describeFlags(ready bool, armed bool) string {
	switch ready {
	case true:
		return "ready"
	case false:
		return "not ready"
	}

	switch armed {
	case true:
		return "armed"
	}

	return "unknown"
}
