package standing

// Row is a standing with its table position, starting at 1.
type Row struct {
	Position int
	Standing
}

func Rows(standings []Standing) []Row {
	out := make([]Row, 0, len(standings))
	for i, s := range standings {
		out = append(out, Row{Position: i + 1, Standing: s})
	}
	return out
}
