// Command keyprobe binds keys and mouse buttons to named controls and
// shows, live in the terminal, which controls fire as input arrives.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/keybind/internal/config"
	"github.com/dshills/keybind/internal/input/binding"
	"github.com/dshills/keybind/internal/input/script"
	"github.com/dshills/keybind/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	layout     string
	logLevel   string
	scriptPath string
	binds      bindFlags
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: keyprobe needs an interactive terminal")
		return 1
	}

	logs := newLogPane(64)
	var logOut io.Writer = logs
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = io.MultiWriter(logs, f)
	}
	logger := logging.New(logging.Config{
		Level:  cfg.Level(),
		Output: logOut,
		Prefix: "keyprobe",
	})

	table := binding.NewTable(
		binding.WithLayout(cfg.Layout()),
		binding.WithLogger(logger),
	)

	var eng *script.Engine
	if opts.scriptPath != "" {
		eng = script.NewEngine(script.WithLogger(logger))
		defer eng.Close()
		if err := eng.DoFile(opts.scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	p := newProbe(table, logs, logger)
	if err := p.bind(opts.binds, eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := p.bindQuit(cfg.Input.QuitKey); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()
	if cfg.Input.Mouse {
		screen.EnableMouse()
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			_ = screen.PostEvent(tcell.NewEventInterrupt(errInterrupted))
		}
	}()

	logger.Info("probing %d controls", len(p.controls))
	p.run(screen)
	return 0
}

// loadConfig layers the config file, the environment and the flags.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	if opts.layout != "" {
		cfg.Input.Layout = opts.layout
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.layout, "layout", "", "Keyboard layout (us, azerty, dvorak)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua script whose functions handle controls of the same name")
	flag.Var(&opts.binds, "bind", "Bind input=label (repeatable; input may be key:, scancode: or mouse: prefixed)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keyprobe - watch key and mouse bindings fire\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyprobe [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyprobe -bind w=up -bind Up=up           Two keys, one control\n")
		fmt.Fprintf(os.Stderr, "  keyprobe -layout azerty -bind key:a=left  Bind the key labelled a\n")
		fmt.Fprintf(os.Stderr, "  keyprobe -bind 'scancode 4=fire'          Bind a raw scancode\n")
		fmt.Fprintf(os.Stderr, "  keyprobe -bind mouse:right=aim            Bind a mouse button\n")
		fmt.Fprintf(os.Stderr, "  keyprobe -script hooks.lua -bind j=jump   Call jump(active) in Lua\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keyprobe %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", flag.Args())
		os.Exit(1)
	}

	return opts
}
