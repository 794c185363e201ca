package progressbar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualProgressBar(t *testing.T) {
	var out bytes.Buffer
	p := NewManualProgressBar(&out, 10, 4)
	p.now = func() time.Time { return p.startTime.Add(3 * time.Second) }

	p.Increment()
	p.Increment()
	assert.Equal(t, 0.5, p.Progress())
	assert.Equal(t, "|█████     | [50.00% | elapsed: 3s]", p.String())

	for i := 0; i < 10; i++ {
		p.Increment()
	}
	assert.Equal(t, 1.0, p.Progress())

	p.Display()
	p.Close()
	assert.True(t, strings.HasSuffix(out.String(), "elapsed: 3s]\n"))
	assert.Contains(t, out.String(), "\033[K|██████████|")
}
