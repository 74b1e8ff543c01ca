package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/chronoguard/internal/config"
	"github.com/akyairhashvil/chronoguard/internal/database"
	"github.com/akyairhashvil/chronoguard/internal/tui"
	"github.com/akyairhashvil/chronoguard/internal/util"
)

func main() {
	importPath := flag.String("import", "", "replace the store from an SQL export file and exit")
	exportPath := flag.String("export", "", "write an SQL export to the given file and exit")
	encrypted := flag.Bool("encrypted", false, "prompt for a passphrase to encrypt the export or decrypt the import")
	flag.Parse()

	cfg, err := config.Load()
	util.MustSucceed("config", err)

	dbPath := cfg.DBPath
	if dbPath == "" {
		root := util.DataDir(config.AppName)
		_ = os.MkdirAll(root, 0o755)
		dbPath = filepath.Join(root, config.DBFileName)
	}

	ctx := context.Background()
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		util.LogError("close store", db.Close())
	}()

	if err := db.Seed(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "seed store: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *exportPath != "":
		runExport(ctx, db, *exportPath, *encrypted)
		return
	case *importPath != "":
		runImport(ctx, db, *importPath, *encrypted)
		return
	}

	p := tea.NewProgram(tui.NewMainModel(ctx, db, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runExport(ctx context.Context, db *database.Database, path string, encrypted bool) {
	opts := database.ExportOptions{}
	if encrypted {
		pass, err := promptForKey("Export passphrase: ")
		if err != nil || pass == "" {
			fmt.Fprintln(os.Stderr, "a passphrase is required for an encrypted export")
			os.Exit(1)
		}
		opts = database.ExportOptions{EncryptOutput: true, Passphrase: pass}
	}
	script, err := db.ExportSQL(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, script, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported to %s\n", path)
}

func runImport(ctx context.Context, db *database.Database, path string, encrypted bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import: %v\n", err)
		os.Exit(1)
	}
	var pass string
	if encrypted {
		pass, err = promptForKey("Import passphrase: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "import: %v\n", err)
			os.Exit(1)
		}
	}
	if err := db.ImportSQL(ctx, data, pass); err != nil {
		fmt.Fprintf(os.Stderr, "import failed, store unchanged: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %s\n", path)
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
