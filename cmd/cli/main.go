package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	global := flag.NewFlagSet("greenplot", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	user := global.String("user", "", "user id sent as X-User-ID")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "meta":
		handleMeta(ctx, client, *baseURL)
	case "assess":
		handleAssess(ctx, client, *baseURL, args[1:])
	case "compare":
		handleCompare(ctx, client, *baseURL, args[1:])
	case "progress":
		handleProgress(ctx, client, *baseURL, *user, sub, args[2:])
	case "feed":
		handleFeed(*baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleMeta(ctx context.Context, client *http.Client, baseURL string) {
	var resp map[string]any
	if err := doGet(ctx, client, baseURL+"/assess", "", &resp); err != nil {
		log.Fatalf("meta failed: %v", err)
	}
	printJSON(resp)
}

func plotFlags(fs *flag.FlagSet) (region, soil, area *string, fruit *bool) {
	region = fs.String("region", "", "region name")
	soil = fs.String("soil", "", "soil type (clayey|sandy|loamy)")
	area = fs.String("area", "", "plot area in square metres")
	fruit = fs.Bool("fruit", false, "prefer fruit-bearing trees")
	return
}

func plotForm(region, soil, area string, fruit bool) url.Values {
	form := url.Values{
		"region":   {region},
		"soil":     {soil},
		"area_sqm": {area},
	}
	if fruit {
		form.Set("wants_fruit", "on")
	}
	return form
}

func handleAssess(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("assess", flag.ExitOnError)
	region, soil, area, fruit := plotFlags(fs)
	_ = fs.Parse(args)
	if *region == "" || *soil == "" {
		log.Fatal("region and soil are required")
	}

	var resp map[string]any
	if err := doForm(ctx, client, baseURL+"/assess", "", plotForm(*region, *soil, *area, *fruit), &resp); err != nil {
		log.Fatalf("assess failed: %v", err)
	}
	printJSON(resp)
}

func handleCompare(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	region, soil, area, fruit := plotFlags(fs)
	_ = fs.Parse(args)
	if *region == "" || *soil == "" {
		log.Fatal("region and soil are required")
	}

	var resp map[string]any
	if err := doForm(ctx, client, baseURL+"/compare", "", plotForm(*region, *soil, *area, *fruit), &resp); err != nil {
		log.Fatalf("compare failed: %v", err)
	}
	printJSON(resp)
}

func handleProgress(ctx context.Context, client *http.Client, baseURL, user, sub string, args []string) {
	switch sub {
	case "add":
		fs := flag.NewFlagSet("progress add", flag.ExitOnError)
		region := fs.String("region", "", "region name")
		soil := fs.String("soil", "", "soil type")
		area := fs.String("area", "", "plot area in square metres")
		note := fs.String("note", "", "short note")
		photo := fs.String("photo", "", "path to the plot photo")
		_ = fs.Parse(args)
		if *photo == "" {
			log.Fatal("photo is required")
		}

		var resp map[string]any
		if err := submitProgress(ctx, client, baseURL, user, *region, *soil, *area, *note, *photo, &resp); err != nil {
			log.Fatalf("submit failed: %v", err)
		}
		printJSON(resp)
	case "list":
		var resp map[string]any
		if err := doGet(ctx, client, baseURL+"/progress", user, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: greenplot progress <add|list>")
	}
}

func handleFeed(baseURL, sub string, args []string) {
	switch sub {
	case "watch":
		fs := flag.NewFlagSet("feed watch", flag.ExitOnError)
		wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
		_ = fs.Parse(args)

		endpoint := *wsURL
		if endpoint == "" {
			var err error
			endpoint, err = websocketURL(baseURL, "/ws")
			if err != nil {
				log.Fatalf("ws url: %v", err)
			}
		}
		if err := runWebSocket(endpoint); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	default:
		log.Fatal("usage: greenplot feed watch")
	}
}

// submitProgress builds the multipart form the API expects, photo included.
func submitProgress(ctx context.Context, client *http.Client, baseURL, user, region, soil, area, note, photoPath string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("region", region)
	_ = w.WriteField("soil", soil)
	_ = w.WriteField("area_sqm", area)
	_ = w.WriteField("note", note)

	f, err := os.Open(photoPath)
	if err != nil {
		return fmt.Errorf("open photo: %w", err)
	}
	part, err := w.CreateFormFile("photo", filepath.Base(photoPath))
	if err == nil {
		_, err = io.Copy(part, f)
	}
	f.Close()
	if err != nil {
		return fmt.Errorf("attach photo: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/progress", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	return do(client, req, out)
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[feed] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

func doGet(ctx context.Context, client *http.Client, endpoint, user string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	return do(client, req, out)
}

func doForm(ctx context.Context, client *http.Client, endpoint, user string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	return do(client, req, out)
}

func do(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", req.Method, req.URL, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("greenplot <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  meta")
	fmt.Println("  assess -region R -soil S [-area N] [-fruit]")
	fmt.Println("  compare -region R -soil S [-area N] [-fruit]")
	fmt.Println("  progress add -photo PATH [-region R] [-soil S] [-area N] [-note TEXT]")
	fmt.Println("  progress list")
	fmt.Println("  feed watch")
}
