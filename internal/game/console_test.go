package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleTail(t *testing.T) {
	c := NewConsole()
	assert.Empty(t, c.Tail(10))

	c.Append("one")
	c.Append("two")
	c.Append("three")

	assert.Equal(t, []string{"two", "three"}, c.Tail(2))
	assert.Equal(t, []string{"one", "two", "three"}, c.Tail(50))
}

func TestConsoleEvictsOldestBeyondCapacity(t *testing.T) {
	c := NewConsole()
	for i := 0; i < consoleCapacity+50; i++ {
		c.Append(fmt.Sprintf("line %d", i))
	}

	all := c.Tail(consoleCapacity * 2)
	assert.Len(t, all, consoleCapacity)
	assert.Equal(t, "line 50", all[0])
	assert.Equal(t, fmt.Sprintf("line %d", consoleCapacity+49), all[len(all)-1])
}
