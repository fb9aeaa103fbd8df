package main

// Send one chat message through the real OpenRouter client:
//   go run ./cmd/prompttest -message "What are his hobbies?"
// Pass -show-prompt to print the system prompt without calling the API.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/llm/openrouter"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	message := flag.String("message", "", "User message to send")
	model := flag.String("model", cfg.OpenRouterModel, "OpenRouter model")
	resumePath := flag.String("resume", cfg.ResumePath, "Path to the resume JSON")
	showPrompt := flag.Bool("show-prompt", false, "Print the system prompt and exit without calling the API")
	flag.Parse()

	store := resume.NewService(*resumePath)
	contextJSON, err := store.ContextJSON()
	if err != nil {
		exitErr(fmt.Sprintf("load resume: %v", err))
	}

	if *showPrompt {
		fmt.Println(openrouter.BuildSystemPrompt(store.CandidateName(), contextJSON))
		return
	}

	if strings.TrimSpace(*message) == "" {
		exitErr("message is required")
	}

	client, err := openrouter.New(openrouter.Config{
		APIKey:   cfg.OpenRouterAPIKey,
		Model:    *model,
		BaseURL:  config.OpenRouterBaseURL,
		SiteURL:  cfg.SiteURL,
		SiteName: cfg.SiteName,
	})
	if err != nil {
		exitErr(err.Error())
	}

	reply, err := client.Chat(context.Background(), llm.ChatInput{
		UserMessage:   *message,
		ResumeContext: contextJSON,
		CandidateName: store.CandidateName(),
	})
	if err != nil {
		exitErr(fmt.Sprintf("chat: %v", err))
	}

	fmt.Println(reply)
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
