// Command nesgo-debug loads an iNES ROM and steps it one instruction at a
// time in an interactive TUI, showing registers, flags, and a window of
// memory around the program counter.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/pleroux64/nesgo/console"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES (.nes) ROM file")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("nesgo-debug: -rom is required")
	}

	f, err := os.Open(*romPath)
	if err != nil {
		log.Fatalf("nesgo-debug: %v", err)
	}
	defer f.Close()

	m, err := console.New(f)
	if err != nil {
		log.Fatalf("nesgo-debug: %v", err)
	}
	m.Reset()

	m.Cpu.Debug(m.Bus, m.Cpu.PC)
}
