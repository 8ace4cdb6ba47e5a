package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aoideee/toolrenter/internal/data"
)

func runConsole(input string) string {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	newConsole(data.DefaultCatalog(), strings.NewReader(input), &out, logger).run()
	return out.String()
}

func TestConsole_Checkout(t *testing.T) {
	out := runConsole("1\nLADW\n3\n10\n7/2/2020\n\n2\n")

	assert.Contains(t, out, "Tool Code: LADW")
	assert.Contains(t, out, "Due Date: 07/05/20")
	assert.Contains(t, out, "Final Charge: $3.58")
	assert.True(t, strings.HasSuffix(out, msgExit+"\n"))
}

func TestConsole_EmptyDiscountMeansZero(t *testing.T) {
	out := runConsole("1\njakd\n6\n\n9/3/2015\n\n2\n")

	assert.Contains(t, out, "Discount Percent: 0%")
	assert.Contains(t, out, "Final Charge: $8.97")
}

func TestConsole_RejectedAnswerReturnsToMenu(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad tool", "1\nXXXX\n2\n", checkoutPrompts[0].invalid},
		{"bad days", "1\nLADW\n0\n2\n", checkoutPrompts[1].invalid},
		{"bad discount", "1\nJAKR\n5\n101\n2\n", checkoutPrompts[2].invalid},
		{"bad date", "1\nLADW\n3\n10\n2020-07-02\n2\n", checkoutPrompts[3].invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runConsole(tt.input)
			assert.Contains(t, out, "!! "+tt.want+" !!")
			assert.NotContains(t, out, "Final Charge:")
		})
	}
}

func TestConsole_InvalidOption(t *testing.T) {
	out := runConsole("9\n2\n")
	assert.Contains(t, out, "!! "+msgBadOption+" !!")
}

func TestConsole_EOFExits(t *testing.T) {
	out := runConsole("1\nLADW\n")
	assert.True(t, strings.HasSuffix(out, msgExit+"\n"))
	assert.NotContains(t, out, "Final Charge:")
}
