package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandtdamman/i281-software/assembler"
	"github.com/brandtdamman/i281-software/config"
	"github.com/brandtdamman/i281-software/image"
	"github.com/brandtdamman/i281-software/parser"
	"github.com/brandtdamman/i281-software/report"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliArgs mirrors the argparse surface of the original compiler, with
// one Go-native addition (--interactive) wired to the report package's
// tview/tcell browser.
type cliArgs struct {
	verbose     bool
	showVersion bool
	showHelp    bool
	force       bool
	interactive bool
	inputs      []string
}

func parseArgs(args []string) (*cliArgs, error) {
	out := &cliArgs{}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-v", "--verbose":
			out.verbose = true
		case "--version":
			out.showVersion = true
		case "-h", "--help":
			out.showHelp = true
		case "-f", "--force":
			out.force = true
		case "--interactive":
			out.interactive = true
		case "-i", "--input":
			for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				out.inputs = append(out.inputs, args[i])
			}
		default:
			return nil, fmt.Errorf("unrecognized argument: %s", args[i])
		}
	}

	return out, nil
}

func run(args []string, stdout, stderr *os.File) int {
	parsed, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		printHelp(stdout)
		return 1
	}

	if parsed.showVersion {
		fmt.Fprintf(stdout, "i281Compiler -- Version: %s\n", Version)
		if Commit != "unknown" {
			fmt.Fprintf(stdout, "Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Fprintf(stdout, "Built: %s\n", Date)
		}
		return 0
	}

	if parsed.showHelp || len(parsed.inputs) == 0 {
		printHelp(stdout)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if parsed.force {
		cfg.Output.ForceWrites = true
	}
	if cfg.CLI.Verbose {
		parsed.verbose = true
	}
	if cfg.CLI.Interactive {
		parsed.interactive = true
	}

	batch := &report.Batch{}
	for _, source := range parsed.inputs {
		processInput(source, parsed, cfg, batch, stdout)
	}

	if parsed.interactive {
		browser := report.NewBrowser(batch)
		if err := browser.Run(); err != nil {
			fmt.Fprintf(stderr, "interactive report error: %v\n", err)
			return 1
		}
	} else {
		fmt.Fprint(stdout, report.Summary(batch, parsed.verbose))
	}

	if len(batch.Failed) > 0 {
		return 1
	}
	return 0
}

// processInput resolves source (a file or a directory of .asm files)
// and assembles every file it names, recording the outcome in batch.
// A failure on one file never aborts the rest of the batch, matching
// the original compiler's succeeded/failed accumulation.
func processInput(source string, args *cliArgs, cfg *config.Config, batch *report.Batch, stdout *os.File) {
	source = strings.TrimPrefix(source, "./")
	source = strings.TrimPrefix(source, ".\\")

	info, err := os.Stat(source)
	if err != nil {
		batch.AddFailure(report.Failure{Source: source, Err: fmt.Errorf("File/Directory given is not valid or does not exist. [ArgumentError]")})
		return
	}

	var files []string
	if info.IsDir() {
		files, err = catalogDirectory(source)
		if err != nil {
			batch.AddFailure(report.Failure{Source: source, Err: err})
			return
		}
		if len(files) == 0 {
			batch.AddFailure(report.Failure{Source: source, Err: fmt.Errorf("Directory given has no assembly file(s) within. [ArgumentError]")})
			return
		}
	} else {
		if !strings.HasSuffix(source, ".asm") {
			batch.AddFailure(report.Failure{Source: source, Err: fmt.Errorf("File given is not an assembly file. [IOError]")})
			return
		}
		files = []string{source}
	}

	for _, f := range files {
		assembleOne(f, args, cfg, batch, stdout)
	}
}

func catalogDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s [IOError]", err.Error())
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".asm") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

// assembleOne reads, echoes (if verbose), assembles, and writes the
// output bundle for a single .asm file.
func assembleOne(path string, args *cliArgs, cfg *config.Config, batch *report.Batch, stdout *os.File) {
	status := fmt.Sprintf("========= Compiling <%s>.. =========", path)
	fmt.Fprintln(stdout, status)
	defer fmt.Fprintln(stdout, strings.Repeat("=", len(status)))

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied CLI path, by design
	if err != nil {
		batch.AddFailure(report.Failure{Source: path, Err: err})
		return
	}
	source := string(data)

	if args.verbose {
		echoSource(stdout, source)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outDir := filepath.Join(cfg.Output.Directory, name)

	if err := ensureOutputDir(outDir, cfg.Output.ForceWrites, name, stdin()); err != nil {
		batch.AddFailure(report.Failure{Source: path, Err: err})
		return
	}

	limits := parser.Limits{DMEM: cfg.Memory.DMEMLimit, IMEM: cfg.Memory.IMEMLimit}
	result, err := assembler.AssembleWithLimits(source, limits)
	if err != nil {
		batch.AddFailure(report.Failure{Source: path, Err: err})
		return
	}

	if args.verbose {
		fmt.Fprintln(stdout, " == == MACHINE CODE == == ")
		fmt.Fprintln(stdout, strings.Join(result.Image.Emitted, "\n"))
		fmt.Fprintln(stdout)
	}

	paths, err := writeBundle(outDir, name, source, result.Image)
	if err != nil {
		batch.AddFailure(report.Failure{Source: path, Err: err})
		return
	}

	fmt.Fprintf(stdout, "File (%s) has successfully compiled.\n", path)
	batch.AddSuccess(report.Success{Source: path, Name: name, OutputPaths: paths})
}

// stdin is split out so ensureOutputDir's overwrite prompt can be
// redirected in tests without touching os.Stdin globally.
func stdin() *bufio.Reader { return bufio.NewReader(os.Stdin) }

func echoSource(stdout *os.File, source string) {
	for i, line := range strings.Split(source, "\n") {
		switch {
		case i < 10:
			fmt.Fprintf(stdout, "  %d| %s\n", i, line)
		case i < 100:
			fmt.Fprintf(stdout, " %d| %s\n", i, line)
		default:
			fmt.Fprintf(stdout, "%d| %s\n", i, line)
		}
	}
	fmt.Fprintln(stdout)
}

// ensureOutputDir creates ./output/<name> if absent, or prompts for
// overwrite confirmation if it already exists and force is false,
// matching createSubDirectory's interactive Y/N loop.
func ensureOutputDir(dir string, force bool, name string, in *bufio.Reader) error {
	if _, err := os.Stat(dir); err == nil {
		if force {
			return nil
		}
		for {
			fmt.Printf("Do you wish to overwrite previously compiled files for %s [Y/N]?  ", name)
			line, _ := in.ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "n":
				return fmt.Errorf("Directory already exists, aborting. [IOError]")
			case "y":
				return nil
			}
		}
	}
	return os.MkdirAll(dir, 0750)
}

// writeBundle writes the transcript .bin file and the three Verilog
// modules, returning every path written.
func writeBundle(dir, name, source string, img *image.Image) ([]string, error) {
	binPath := filepath.Join(dir, name+".bin")
	if err := os.WriteFile(binPath, []byte(img.Transcript(source)), 0644); err != nil {
		return nil, err
	}

	paths := []string{binPath}
	modules := []struct {
		file     string
		name     string
		width    int
		data     []string
		comments []string
	}{
		{"User_Code_Low.v", "User_Code_Low", 15, img.Code, nil},
		{"User_Code_High.v", "User_Code_High", 15, img.Code, nil},
		{"User_Data.v", "User_Data", 7, img.Data, img.DataComments},
	}

	for _, m := range modules {
		path := filepath.Join(dir, m.file)
		if err := os.WriteFile(path, []byte(renderVerilogModule(m.name, m.width, m.data, m.comments)), 0644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// renderVerilogModule emits one of the three fixed 16-output HDL
// modules, matching writeVerilogFiles's exact module skeleton. Used
// data slots carry a trailing //variable comment; code slots and fill
// slots carry none.
func renderVerilogModule(name string, width int, slots, comments []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s(", name)
	for i := 0; i < 16; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "b%dI", i)
	}
	b.WriteString(");\r\n\r\n")

	for i := 0; i < 16; i++ {
		fmt.Fprintf(&b, "\toutput [%d:0] b%dI;\r\n", width, i)
	}
	b.WriteString("\n")

	for i, slot := range slots {
		if i >= 16 {
			break
		}
		fmt.Fprintf(&b, "\tassign b%dI[%d:0] = %d'b%s;", i, width, width+1, slot)
		if i < len(comments) && comments[i] != "" {
			fmt.Fprintf(&b, " //%s", comments[i])
		}
		b.WriteString("\r\n")
	}

	b.WriteString("\nendmodule\r\n")
	return b.String()
}

func printHelp(stdout *os.File) {
	fmt.Fprintf(stdout, `i281Compiler %s

Usage: i281asm -i <file-or-directory>... [options]

Options:
  -i, --input PATH...   File(s) or director(ies) to compile to machine language
  -v, --verbose          Echo source and machine code while compiling
  -f, --force            Overwrite existing output directories without prompting
  --interactive          Browse the succeeded/failed report in a terminal UI
  --version              Show compiler version and exit
  -h, --help             Show this help message

Examples:
  i281asm -i program.asm
  i281asm -v -i programs/
  i281asm -f -i a.asm b.asm
`, Version)
}
