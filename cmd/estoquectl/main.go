// Command estoquectl es un cliente de terminal para la API de estoque.
//
//	estoquectl -url http://localhost:8080
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Estoque-api/pkg/client"
)

func main() {
	var (
		baseURL  = flag.String("url", envOr("ESTOQUE_URL", "http://localhost:8080"), "URL base de la API")
		username = flag.String("user", "", "usuario (si vacío se pregunta)")
	)
	flag.Parse()

	c, err := client.New(*baseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := &shell{c: c, in: bufio.NewScanner(os.Stdin), out: os.Stdout, username: *username}
	if err := sh.run(ctx); err != nil && err != io.EOF {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
