package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	calc "github.com/tarnan3751/Scientific-Calculator"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(0)
	var inname, cfgname string
	cfg := defaultConfig()
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML settings file")
	flag.StringVar(&cfg.Format, "fmt", cfg.Format, "result formatting string")
	flag.UintVar(&cfg.Precision, "p", cfg.Precision, "precision of calculations in bits (0 for float64)")
	flag.BoolVar(&cfg.Lines, "n", cfg.Lines, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&cfg.Echo, "echo", cfg.Echo, "print postfix forms")
	flag.BoolVar(&cfg.Inverse, "inv", cfg.Inverse, "start the interactive calculator in inverse mode")
	flag.StringVar(&cfg.History, "history", cfg.History, "interactive history file")
	flag.Parse()
	if cfgname != "" {
		cfg = overlay(cfgname, cfg)
	}

	if inname == "" && flag.NArg() == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		os.Exit(repl(cfg))
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		srcs, err = readExprs(f, cfg.Lines)
		if err != nil {
			log.Fatal(err)
		}
	}
	srcs = append(srcs, flag.Args()...)

	status := 0
	for _, src := range srcs {
		r, err := calculate(src, cfg)
		if err != nil {
			fmt.Println("Error:", err)
			status = 1
			continue
		}
		fmt.Println(r)
	}
	os.Exit(status)
}

// overlay loads the config file and reapplies every flag given explicitly on
// the command line, so flags win over the file.
func overlay(name string, flags config) config {
	cfg := defaultConfig()
	if err := loadConfig(name, &cfg); err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = flags.Format
		case "p":
			cfg.Precision = flags.Precision
		case "n":
			cfg.Lines = flags.Lines
		case "echo":
			cfg.Echo = flags.Echo
		case "inv":
			cfg.Inverse = flags.Inverse
		case "history":
			cfg.History = flags.History
		}
	})
	return cfg
}

// calculate evaluates src and renders the result with the configured format.
func calculate(src string, cfg config) (string, error) {
	toks, err := calc.Tokenize(src)
	if err != nil {
		return "", err
	}
	post, err := calc.ToPostfix(toks)
	if err != nil {
		return "", err
	}
	var r string
	if cfg.Precision == 0 {
		v, err := calc.EvalPostfix(post)
		if err != nil {
			return "", err
		}
		r = fmt.Sprintf(cfg.Format, v)
	} else {
		v, err := calc.EvalPostfixPrec(post, cfg.Precision)
		if err != nil {
			return "", err
		}
		r = fmt.Sprintf(cfg.Format, v)
	}
	if cfg.Echo {
		r = calc.FormatPostfix(post) + " : " + r
	}
	return r, nil
}

// readExprs reads expressions from r. With lines, each non-blank line is an
// expression; otherwise the entire input is one.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		srcs = append(srcs, scan.Text())
	}
	return srcs, scan.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return bufio.NewReader(os.Stdin), nil
	}
	return nil, nil
}
