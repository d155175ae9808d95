package metrics

// Churn is the mean fraction of the grid that changed state per generation.
type Churn struct {
	name    string
	sum     float64
	samples int
}

func NewChurn() *Churn {
	return &Churn{name: "churn"}
}

func (c *Churn) Name() string { return c.name }

func (c *Churn) Observe(s Sample) {
	c.samples++
	if s.Area > 0 {
		c.sum += float64(s.Changed) / float64(s.Area)
	}
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *Churn) Reset() {
	c.sum = 0
	c.samples = 0
}
