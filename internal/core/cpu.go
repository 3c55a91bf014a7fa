package core

// IdleID labels timeline blocks during which no process was ready.
const IdleID = "IDLE"

// TimelineBlock is one contiguous interval of the Gantt chart.
type TimelineBlock struct {
	ID     string
	Start  int
	End    int
	IsIdle bool
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core. Its clock starts at 0 and every unit of
// time it advances is recorded as either a busy or an idle block, so the
// timeline always covers [0, Now()) without gaps.
type Cpu struct {
	now      int
	timeline []TimelineBlock
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]TimelineBlock, 0)}
}

func (c *Cpu) Now() int {
	return c.now
}

// IdleUntil advances the clock to t, recording an idle block. It is a no-op
// when t is not in the future.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.now {
		return
	}
	c.timeline = append(c.timeline, TimelineBlock{
		ID:     IdleID,
		Start:  c.now,
		End:    t,
		IsIdle: true,
	})
	c.now = t
}

// Execute runs the process labelled id for d time units starting now.
func (c *Cpu) Execute(id string, d int) (start, end int) {
	start = c.now
	end = start + d
	c.timeline = append(c.timeline, TimelineBlock{
		ID:    id,
		Start: start,
		End:   end,
	})
	c.now = end
	return start, end
}

// Timeline returns a copy of the blocks recorded so far.
func (c *Cpu) Timeline() []TimelineBlock {
	out := make([]TimelineBlock, len(c.timeline))
	copy(out, c.timeline)
	return out
}

// MetricOf sums the busy and idle time of a timeline.
func MetricOf(timeline []TimelineBlock) CpuMetric {
	var m CpuMetric
	for _, b := range timeline {
		d := b.End - b.Start
		if b.IsIdle {
			m.IdleTime += d
		} else {
			m.UtilizationTime += d
		}
		m.TotalTime += d
	}
	return m
}
