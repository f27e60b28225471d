// Command-line interface for the Just Code Works assistant and admin APIs.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jcw/jcw/config"
	"jcw/jcw/services/assistant"
	"jcw/jcw/services/indexer"
	"jcw/jcw/services/responder"
	"jcw/jcw/services/templates"
	"jcw/jcw/services/tenant"
	"jcw/jcw/utils/color"
	"jcw/jcw/utils/jsonutils"
	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"go.uber.org/zap"
)

func usage() {
	fmt.Println("jcw CLI usage:")
	fmt.Println("  jcw chat                          # Chat with the assistant server")
	fmt.Println("  jcw ask <message>                 # Answer locally, no server needed")
	fmt.Println("  jcw tenant <host> [tenant]        # Resolve a tenant the way /tenant does")
	fmt.Println("  jcw templates list [category]")
	fmt.Println("  jcw templates get|code|toggle|delete <id>")
	fmt.Println("  jcw templates categories|stats")
	fmt.Println("  jcw templates upload <name> <category> <image> [description] [website_type]")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.ColorError("error: "+err.Error()))
	logging.ErrorLogger.Error("cli command failed", zap.Error(err))
	os.Exit(1)
}

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "chat":
		runChat(cfg)
	case "ask":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		runAsk(strings.Join(args[1:], " "))
	case "tenant":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		runTenant(cfg, args[1:])
	case "templates":
		runTemplates(cfg, args[1:])
	default:
		usage()
		os.Exit(1)
	}
}

func runChat(cfg config.Config) {
	session := assistant.NewSession(
		assistant.NewHTTPTransport(cfg.AssistantURL),
		assistant.WithStateHook(func(s assistant.State) {
			if s == assistant.AwaitingResponse {
				fmt.Println(color.ColorMuted("…thinking"))
			}
		}),
	)
	logging.AppLogger.Info("chat session started", zap.String("url", cfg.AssistantURL))

	fmt.Println(color.ColorAssistant(session.Messages()[0].Text))
	fmt.Println(color.ColorMuted("Type 'exit' to quit, '/page <path>' to change the page context."))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.ColorPrompt("you> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "exit" || line == "quit":
			fmt.Println("👋 Goodbye!")
			return
		case line == "":
			continue
		case strings.HasPrefix(line, "/page "):
			session.SetPage(strings.TrimSpace(strings.TrimPrefix(line, "/page ")))
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		reply, err := session.Submit(ctx, line)
		cancel()
		if err != nil {
			fmt.Println(color.ColorWarning(err.Error()))
			continue
		}
		fmt.Println(color.ColorAssistant(reply.Text))
		fmt.Println()
	}
}

func runAsk(message string) {
	src, err := indexer.NewCatalogSource()
	if err != nil {
		fail(err)
	}
	ix := indexer.New(src)
	if err := ix.EnsureFresh(context.Background()); err != nil {
		fail(err)
	}
	page := ix.PageContent("/")
	rule := responder.Match(message)
	fmt.Println(color.ColorMuted("topic: " + string(rule.Topic)))
	fmt.Println(responder.Respond(message, ix.AggregateText(), &page))
}

func runTenant(cfg config.Config, args []string) {
	query := url.Values{}
	if len(args) > 1 {
		query.Set("tenant", args[1])
	}
	resolver := tenant.NewResolver(tenant.NewClient(cfg.APIBaseURL, nil), cfg.TenantHostSuffixes, cfg.TenantReservedKeys)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	res := resolver.Resolve(ctx, args[0], query)
	if res.State != tenant.StateWelcome {
		fmt.Println(color.ColorWarning(fmt.Sprintf("%s (key %q)", res.State.Message(), res.Key)))
		os.Exit(2)
	}
	fmt.Println(color.ColorInfo("Welcome to " + res.Tenant.BusinessName + "!"))
	fmt.Println(jsonutils.ToJSON(res.Tenant))
}

func runTemplates(cfg config.Config, args []string) {
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	client := templates.NewClient(cfg.APIBaseURL, nil)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	needID := func() string {
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		return args[1]
	}

	var (
		out any
		err error
	)
	switch args[0] {
	case "list":
		category := ""
		if len(args) > 1 {
			category = args[1]
		}
		out, err = client.List(ctx, category)
	case "get":
		out, err = client.Get(ctx, needID())
	case "code":
		out, err = client.Code(ctx, needID())
	case "categories":
		out, err = client.Categories(ctx)
	case "stats":
		out, err = client.Stats(ctx)
	case "toggle":
		out, err = client.ToggleStatus(ctx, needID())
	case "delete":
		id := needID()
		if err = client.Delete(ctx, id); err == nil {
			out = map[string]string{"deleted": id}
		}
	case "upload":
		out, err = upload(ctx, client, args[1:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	fmt.Println(jsonutils.ToJSON(out))
}

func upload(ctx context.Context, client *templates.Client, args []string) (types.Template, error) {
	if len(args) < 3 {
		usage()
		os.Exit(1)
	}
	f, err := os.Open(args[2])
	if err != nil {
		return types.Template{}, err
	}
	defer f.Close()

	in := types.TemplateUpload{
		Name:             args[0],
		Category:         args[1],
		PreviewImage:     f,
		PreviewImageName: filepath.Base(args[2]),
	}
	if len(args) > 3 {
		in.Description = args[3]
	}
	if len(args) > 4 {
		in.WebsiteType = args[4]
	}
	return client.Upload(ctx, in)
}
