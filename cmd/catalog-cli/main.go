// Package main implements the catalog admin CLI: list, show, add, edit and
// delete products against a running catalog server.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ecomshop/catalog/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := cli.NewClient(serverURL())

	switch os.Args[1] {
	case "list":
		cmdList(ctx, client)
	case "show":
		cmdShow(ctx, client, os.Args[2:])
	case "add":
		cmdAdd(ctx, client, os.Args[2:])
	case "edit":
		cmdEdit(ctx, client, os.Args[2:])
	case "delete":
		cmdDelete(ctx, client, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// serverURL resolves the API base URL; flag-less so every subcommand shares it.
func serverURL() string {
	if v := os.Getenv("CATALOG_SERVER"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func cmdList(ctx context.Context, client *cli.Client) {
	view := cli.NewListView(client)
	view.Load(ctx)
	view.Render(os.Stdout)
}

func cmdShow(ctx context.Context, client *cli.Client, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: catalog-cli show <id>")
		os.Exit(1)
	}
	view := cli.NewDetailView(client, args[0])
	view.Load(ctx)
	view.Render(os.Stdout)
}

func cmdAdd(ctx context.Context, client *cli.Client, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "Product name (required)")
	description := fs.String("description", "", "Product description (required)")
	price := fs.String("price", "", "Product price (required, non-negative)")
	imageFile := fs.String("image-file", "", "Local image file to upload (optional)")
	_ = fs.Parse(args)

	form := cli.NewForm(client)
	form.Name = *name
	form.Description = *description
	form.Price = *price
	if *imageFile != "" {
		form.SelectFile(*imageFile)
	}

	submit(ctx, form)
}

func cmdEdit(ctx context.Context, client *cli.Client, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: catalog-cli edit <id> [flags]")
		os.Exit(1)
	}
	id := args[0]

	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	name := fs.String("name", "", "New product name")
	description := fs.String("description", "", "New product description")
	price := fs.String("price", "", "New product price")
	imageFile := fs.String("image-file", "", "Local image file to upload")
	_ = fs.Parse(args[1:])

	existing, err := client.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	form := cli.NewEditForm(client, existing)
	if *name != "" {
		form.Name = *name
	}
	if *description != "" {
		form.Description = *description
	}
	if *price != "" {
		form.Price = *price
	}
	if *imageFile != "" {
		form.SelectFile(*imageFile)
	}

	submit(ctx, form)
	fmt.Printf("View it at %s\n", form.DetailPath())
}

func cmdDelete(ctx context.Context, client *cli.Client, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: catalog-cli delete [-yes] <id>")
		os.Exit(1)
	}
	id := fs.Arg(0)

	view := cli.NewDetailView(client, id)
	view.Load(ctx)
	view.Render(os.Stdout)

	deleted, err := view.Delete(ctx, func(id string) bool {
		if *yes {
			return true
		}
		fmt.Printf("Delete product %s? [y/N]: ", id)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		return strings.EqualFold(strings.TrimSpace(answer), "y")
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !deleted {
		fmt.Println("Aborted.")
		return
	}
	fmt.Println("Product deleted.")
	cmdList(ctx, client)
}

// submit runs the form lifecycle and reports the outcome.
func submit(ctx context.Context, form *cli.Form) {
	if err := form.Submit(ctx); err != nil {
		fmt.Fprintln(os.Stderr, form.Message())
		os.Exit(1)
	}
	fmt.Println(form.Message())
	if saved := form.Saved(); saved != nil {
		fmt.Printf("ID: %s\n", saved.ID)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: catalog-cli <command> [flags]

Commands:
  list                      List all products
  show <id>                 Show one product
  add [flags]               Add a product (-name, -description, -price, -image-file)
  edit <id> [flags]         Edit a product (same flags as add)
  delete [-yes] <id>        Delete a product (asks for confirmation)

The server address is taken from CATALOG_SERVER (default http://localhost:8080).`)
}
