package graphfile

import (
	"bufio"
	"io"
	"strconv"
)

// Write serializes rec in the same format Parse reads. Floats use the shortest
// representation that parses back to the identical value.
func Write(w io.Writer, rec *Record) error {
	bw := bufio.NewWriter(w)

	directed := "0"
	if rec.Directed {
		directed = "1"
	}
	bw.WriteString(strconv.Itoa(rec.NodeCount) + "," + directed + "\n")

	for _, node := range rec.Nodes {
		bw.WriteString(formatFloat(node.X) + "," + formatFloat(node.Y) + "\n")
	}

	for _, edge := range rec.Edges {
		bw.WriteString(strconv.Itoa(edge.Source) + "," + strconv.Itoa(edge.Target))
		if edge.Weighted {
			bw.WriteString("," + formatFloat(edge.Weight))
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
