package sink

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/stat"
)

// Console writes everything to one stream, followed by a small graph of repeats per length.
type Console struct {
	w     io.Writer
	names []string // record names in combined runs
	join  bool
	Graph bool
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w, Graph: true}
}

func (c *Console) Start(h Header) error {
	c.join = h.Combined != ""
	return writeHeader(c.w, h)
}

func (c *Console) BeginRecord(info RecordInfo) (bool, error) {
	c.names = nil
	if c.join {
		c.names = info.Index.Names()
	}
	if _, err := fmt.Fprintf(c.w, "\nProcessing sequence %s.\n", info.Name); err != nil {
		return false, err
	}
	if err := writeRecordInfo(c.w, info); err != nil {
		return false, err
	}
	_, err := fmt.Fprintln(c.w)
	return false, err
}

func (c *Console) OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error {
	_, err := io.WriteString(c.w, pairLine("", c.names, pos1, pos2, rec1, rec2, text, complement))
	return err
}

func (c *Console) AfterEverySequence(counts []int) error {
	if err := writeTotals(c.w, counts); err != nil {
		return err
	}
	if !c.Graph {
		return nil
	}
	summary := Summary(counts)
	if summary == "" {
		return nil
	}
	_, err := io.WriteString(c.w, summary)
	return err
}

func (c *Console) Close() error {
	return nil
}

// Summary gives the mean repeat length and, when more than one length was found, a
// graph of repeats per length. It is empty when nothing was found.
func Summary(counts []int) string {
	var lengths, weights, series []float64
	first := -1
	for length, count := range counts {
		if count == 0 {
			continue
		}
		if first == -1 {
			first = length
		}
		lengths = append(lengths, float64(length))
		weights = append(weights, float64(count))
	}
	if first == -1 {
		return ""
	}
	answer := fmt.Sprintf("Mean repeat length is %.2f.\n", stat.Mean(lengths, weights))
	if len(lengths) < 2 {
		return answer
	}
	for length := first; length < len(counts); length++ {
		series = append(series, float64(counts[length]))
	}
	graph := asciigraph.Plot(series, asciigraph.Height(8), asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("repeats per length, from length %d", first)))
	return answer + graph + "\n"
}
