package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gsspdev/fmsynth"
)

const shellHelp = `Commands:
  list presets     show the preset catalog
  list melodies    show the melody catalog
  play <p> <m>     play melody m with preset p (1-based number or name)
  demo             play the chromatic scale with every preset
  help             show this help
  clear            clear the screen
  quit             leave the shell`

// runShell reads commands from stdin until quit or EOF. A failed command
// prints its error and leaves the shell usable; nothing here exits the
// process.
func runShell(player *fmsynth.Player) error {
	fmt.Println("fmsynth interactive shell. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Println(shellHelp)
		case "clear":
			fmt.Print("\033[2J\033[H")
		case "list":
			what := ""
			if len(fields) > 1 {
				what = fields[1]
			}
			switch what {
			case "presets":
				printNumbered("Presets:", player.ListPresets())
			case "melodies":
				printNumbered("Melodies:", player.ListMelodies())
			case "":
				printNumbered("Presets:", player.ListPresets())
				printNumbered("Melodies:", player.ListMelodies())
			default:
				fmt.Printf("cannot list %q, try 'list presets' or 'list melodies'\n", what)
			}
		case "play":
			if len(fields) != 3 {
				fmt.Println("usage: play <preset> <melody>")
				continue
			}
			if err := playSelectors(player, fields[1], fields[2]); err != nil {
				fmt.Fprintf(os.Stderr, "play failed: %v\n", err)
			}
		case "demo":
			if err := runDemo(player); err != nil {
				fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
			}
		default:
			fmt.Printf("unknown command %q, type 'help' for commands\n", fields[0])
		}
	}
}
