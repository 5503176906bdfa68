// Command storefront runs the orchestration layer interactively: type a
// path to navigate, a few cart commands to mutate, and watch the state
// transitions land. With -demo it serves its own fake commerce API.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"storefront/internal/app"
	"storefront/internal/commercetest"
	"storefront/internal/config"
	"storefront/internal/domain"
)

func main() {
	configPath := flag.String("config", "storefront.yml", "path to the config file")
	demo := flag.Bool("demo", false, "serve an in-process fake commerce API")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *demo {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			logger.Error("demo listener", "error", err)
			os.Exit(1)
		}
		srv := &http.Server{Handler: commercetest.NewServer().Handler()}
		go srv.Serve(ln)
		defer srv.Close()
		cfg.API.BaseURL = "http://" + ln.Addr().String()
		logger.Info("demo commerce API", "addr", cfg.API.BaseURL)
	}

	a := app.New(cfg, app.WithLogger(logger))
	if err := a.Startup(ctx); err != nil {
		logger.Error("startup", "error", err)
		os.Exit(1)
	}
	defer a.Shutdown()

	if err := a.WatchConfig(*configPath); err != nil {
		logger.Warn("config watch disabled", "error", err)
	}

	repl(ctx, a)
}

func repl(ctx context.Context, a *app.App) {
	fmt.Println("storefront: navigate with a path (/shoes), or: add <sku> <qty>, del <item>, cart, more, checkout, state, quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		var err error
		switch fields[0] {
		case "quit", "exit":
			return
		case "state":
			printState(a)
		case "cart":
			err = a.FetchCart(ctx)
		case "more":
			err = a.FetchMoreProducts(ctx)
		case "add":
			if len(fields) < 3 {
				fmt.Println("usage: add <sku> <qty>")
				continue
			}
			qty, convErr := strconv.Atoi(fields[2])
			if convErr != nil {
				fmt.Println("usage: add <sku> <qty>")
				continue
			}
			err = a.AddCartItem(ctx, domain.CartItemDraft{SKU: fields[1], Quantity: qty})
		case "del":
			if len(fields) < 2 {
				fmt.Println("usage: del <item-id>")
				continue
			}
			err = a.DeleteCartItem(ctx, fields[1])
		case "checkout":
			err = a.Checkout(ctx, nil, func(path string) {
				fmt.Println("navigated to", path)
			})
		default:
			if !strings.HasPrefix(line, "/") {
				fmt.Println("unknown command:", fields[0])
				continue
			}
			loc := domain.Location{Pathname: fields[0]}
			if i := strings.IndexByte(fields[0], '?'); i >= 0 {
				loc.Pathname, loc.Search = fields[0][:i], fields[0][i:]
			}
			err = a.Navigate(ctx, loc)
			if err == nil {
				printState(a)
			}
		}
		if err != nil {
			fmt.Println("error:", err)
		}
	}
}

func printState(a *app.App) {
	s := a.State()
	if s.CurrentPage != nil {
		fmt.Printf("page: %s %s\n", s.CurrentPage.Type, s.CurrentPage.Path)
	}
	if len(s.Products) > 0 {
		fmt.Printf("products (%d of %d):\n", len(s.Products), s.ProductsTotalCount)
		for _, p := range s.Products {
			fmt.Printf("  %-8s %-20s %.2f\n", p.SKU, p.Name, p.Price)
		}
	}
	if s.Cart != nil && len(s.Cart.Items) > 0 {
		fmt.Println("cart:")
		for _, it := range s.Cart.Items {
			fmt.Printf("  %s %dx %s\n", it.ID, it.Quantity, it.Name)
		}
	}
	if s.Order != nil {
		fmt.Printf("order: %s total %.2f\n", s.Order.ID, s.Order.GrandTotal)
	}
}
