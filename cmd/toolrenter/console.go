package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aoideee/toolrenter/internal/rental"
)

const banner = ` ______          _____           __
/_  __/__  ___  / / _ \___ ___  / /____ ____
 / / / _ \/ _ \/ / , _/ -_) _ \/ __/ -_) __/
/_/  \___/\___/_/_/|_|\__/_//_/\__/\__/_/
`

const (
	msgWelcome    = "Welcome to..."
	msgExit       = "Exiting Tool Renter..."
	msgMenu       = "Key in an option (by entering 1 or 2) below to select it, then press Enter."
	msgBadOption  = "Invalid input detected. Please enter a valid option (1 or 2)."
	msgCheckout   = "Please key in the following information and press enter after each prompt."
	msgReview     = "Please review the printed tool rental agreement below:"
	msgContinue   = "Please press enter to begin the next ToolRenter transaction..."
	msgIncomplete = "Rental Agreement not complete. Returning to main menu."
)

// prompt is one checkout question and the setter that validates its answer.
type prompt struct {
	text    string
	invalid string // shown on the main menu when the answer is rejected
	set     func(a *rental.Agreement, answer string) error
}

var checkoutPrompts = []prompt{
	{
		text:    "Key in the tool code for desired tool to checkout (ex: CHNS, LADW, JAKD, JAKR):",
		invalid: "The keyed tool code does not match a tool that is available for rent.",
		set:     (*rental.Agreement).SetTool,
	},
	{
		text:    "Enter the number of rental days (ex: 5):",
		invalid: "The keyed number of days is invalid. Please enter a valid number of days from 1 to 36500.",
		set:     (*rental.Agreement).SetRentalDays,
	},
	{
		text:    "Enter the discount percent (ex: 10):",
		invalid: "The keyed discount amount is invalid. Please enter a valid number between 0 and 100 (exclude % symbol).",
		set:     setDiscountOrZero,
	},
	{
		text:    "Enter the checkout date (ex: 8/1/2000):",
		invalid: "The keyed checkout date is invalid. Please enter a valid date. (Ex: 8/1/2000)",
		set:     (*rental.Agreement).SetCheckoutDate,
	},
}

// setDiscountOrZero treats an empty answer as no discount.
func setDiscountOrZero(a *rental.Agreement, answer string) error {
	if strings.TrimSpace(answer) == "" {
		answer = "0"
	}
	return a.SetDiscount(answer)
}

// console runs the menu loop. A rejected answer sends the clerk back to the
// main menu with the reason shown once.
type console struct {
	tools      rental.ToolLookup
	in         *bufio.Scanner
	out        io.Writer
	logger     *slog.Logger
	clearPages bool

	errorMsg string
	exited   bool
}

func newConsole(tools rental.ToolLookup, in io.Reader, out io.Writer, logger *slog.Logger) *console {
	return &console{
		tools:  tools,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// readLine returns the next input line, or false once input is exhausted.
func (c *console) readLine() (string, bool) {
	if c.in.Scan() {
		return c.in.Text(), true
	}
	if err := c.in.Err(); err != nil {
		c.logger.Error("reading input", "error", err)
	}
	return "", false
}

func (c *console) clearScreen() {
	if c.clearPages {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
}

// run shows the main menu until the clerk exits or input ends.
func (c *console) run() {
	c.clearScreen()
	for !c.exited {
		c.showMainMenu()

		line, ok := c.readLine()
		if !ok {
			c.exit()
			return
		}

		switch strings.TrimSpace(line) {
		case "1":
			c.checkout()
		case "2":
			c.exit()
		default:
			c.errorMsg = msgBadOption
		}
		c.clearScreen()
	}
}

func (c *console) showMainMenu() {
	fmt.Fprintln(c.out, msgWelcome)
	fmt.Fprintln(c.out, banner)
	if c.errorMsg != "" {
		fmt.Fprintf(c.out, "!! %s !!\n\n", c.errorMsg)
		c.errorMsg = ""
	}
	fmt.Fprintln(c.out, msgMenu)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "1) Check out a Tool")
	fmt.Fprintln(c.out, "2) Exit")
}

// checkout asks every prompt in order, then prints the finalized agreement
// and waits for Enter.
func (c *console) checkout() {
	c.clearScreen()
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, msgCheckout)
	fmt.Fprintln(c.out)

	agreement := rental.NewAgreement(c.tools)
	for _, p := range checkoutPrompts {
		fmt.Fprintln(c.out, p.text)
		answer, ok := c.readLine()
		if !ok {
			c.exit()
			return
		}
		fmt.Fprintln(c.out)

		if err := p.set(agreement, answer); err != nil {
			c.logger.Debug("checkout answer rejected", "error", err)
			c.errorMsg = p.invalid
			return
		}
	}

	receipt, err := agreement.Finalize()
	if err != nil {
		if !errors.Is(err, rental.ErrIncomplete) {
			c.logger.Error("finalizing agreement", "error", err)
		}
		c.errorMsg = msgIncomplete
		return
	}

	c.clearScreen()
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, msgReview)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, receipt)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, msgContinue)

	if _, ok := c.readLine(); !ok {
		c.exit()
	}
}

func (c *console) exit() {
	c.exited = true
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, msgExit)
}
