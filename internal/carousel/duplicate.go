package carousel

// duplicate appends copies-1 full copies of the original items. It runs
// once per carousel.
func (c *Carousel) duplicate() {
	if c.duplicated {
		return
	}
	n := c.strip.Len()
	if n == 0 {
		c.logf("no items found in strip")
		c.originalCount = 0
		return
	}
	c.originalCount = n

	for set := 1; set < c.opts.Copies; set++ {
		for i := 0; i < n; i++ {
			c.strip.Append(i)
		}
	}
	c.duplicated = true
}
