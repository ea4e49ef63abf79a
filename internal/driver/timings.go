package driver

import (
	"fmt"
	"time"
)

// Timings хранит длительности фаз одного прогона.
type Timings struct {
	Load   time.Duration
	Expand time.Duration
	Print  time.Duration
}

func (t Timings) Total() time.Duration {
	return t.Load + t.Expand + t.Print
}

func (t Timings) String() string {
	return fmt.Sprintf("load %.2fms, expand %.2fms, print %.2fms (total %.2fms)",
		ms(t.Load), ms(t.Expand), ms(t.Print), ms(t.Total()))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
