package reduce

// trialCache maps full program text to a cached oracle verdict. It is
// cleared whenever the committed program length strictly decreases, both
// to bound memory and because longer-context trials cannot legitimately
// recur once the buffer has shrunk.
type trialCache struct {
	verdicts map[string]bool
	hits     int
}

func newTrialCache() *trialCache {
	return &trialCache{verdicts: make(map[string]bool)}
}

// lookup returns the cached verdict for text, if any.
func (c *trialCache) lookup(text string) (verdict bool, found bool) {
	v, ok := c.verdicts[text]
	if ok {
		c.hits++
	}

	return v, ok
}

// record stores the verdict for text.
func (c *trialCache) record(text string, verdict bool) {
	c.verdicts[text] = verdict
}

// clear discards all cached verdicts. Called on strict shrink of the
// committed buffer length.
func (c *trialCache) clear() {
	c.verdicts = make(map[string]bool)
}

// hitCount returns the number of cache hits since the cache (or the
// program) started, for the final statistics report.
func (c *trialCache) hitCount() int {
	return c.hits
}
