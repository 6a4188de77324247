package cases

type Season int

const (
	Winter Season = iota
	Summer
)

func describeSeason(s Season) string {
	switch s {
	default:
		return "some season"
	}
}
