package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"mealer/internal/catalog"
	"mealer/internal/config"
	"mealer/internal/favorites"
	"mealer/internal/planner"
	"mealer/internal/profile"
)

// Bot serves the planner over Telegram long polling. Each Telegram user gets
// their own favorites scope, keyed as "tg:<id>".
type Bot struct {
	api       *tgbotapi.BotAPI
	planner   *planner.Planner
	favorites favorites.Store
	cfg       *config.Config

	mu        sync.Mutex
	lastPlans map[int64]*planner.WeeklyPlanResponse
	profiles  map[int64]profile.UserProfile
}

// NewBot initializes the Telegram bot.
func NewBot(cfg *config.Config, p *planner.Planner, favs favorites.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:       api,
		planner:   p,
		favorites: favs,
		cfg:       cfg,
		lastPlans: make(map[int64]*planner.WeeklyPlanResponse),
		profiles:  make(map[int64]profile.UserProfile),
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			if !b.isAllowed(update.Message.From.ID) {
				log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
				continue
			}
			go b.processMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) isAllowed(userID int64) bool {
	if len(b.cfg.TelegramAllowUserIDs) == 0 {
		return true
	}
	for _, id := range b.cfg.TelegramAllowUserIDs {
		if userID == id {
			return true
		}
	}
	return false
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	command, args := splitCommand(msg.Text)

	switch command {
	case "/start", "/help":
		b.reply(msg.Chat.ID, helpText)
	case "/plan":
		b.handlePlan(ctx, msg)
	case "/swap":
		b.handleSwap(ctx, msg, args)
	case "/like":
		b.handleLike(ctx, msg, args)
	case "/skip":
		b.handleSkip(ctx, msg, args)
	case "/history":
		b.handleHistory(ctx, msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

const helpText = `🥗 *Mealer Bot*

/plan - generate a weekly meal plan
/swap <day> <slot> - replace one meal (slot is 1-based)
/like <meal title> - favorite a meal
/skip <meal title> - never plan a meal again
/history - show liked, swapped and skipped meals`

func (b *Bot) handlePlan(ctx context.Context, msg *tgbotapi.Message) {
	statusID := b.reply(msg.Chat.ID, "🧑‍🍳 *Thinking...* \n(Generating your weekly plan)")

	response, err := b.planner.GeneratePlan(ctx, b.userID(msg), b.profileFor(msg.Chat.ID))
	if err != nil {
		log.Printf("Error generating plan: %v", err)
		b.edit(msg.Chat.ID, statusID, "❌ Failed to generate a plan. Try again later.")
		return
	}

	b.mu.Lock()
	b.lastPlans[msg.Chat.ID] = response
	b.mu.Unlock()

	b.edit(msg.Chat.ID, statusID, formatPlan(response))
}

func (b *Bot) handleSwap(ctx context.Context, msg *tgbotapi.Message, args string) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		b.reply(msg.Chat.ID, "Usage: /swap <day> <slot>, e.g. /swap Monday 2")
		return
	}
	slot, err := strconv.Atoi(parts[1])
	if err != nil || slot < 1 {
		b.reply(msg.Chat.ID, "Slot must be a positive number, e.g. /swap Monday 2")
		return
	}

	b.mu.Lock()
	current := b.lastPlans[msg.Chat.ID]
	b.mu.Unlock()
	if current == nil {
		b.reply(msg.Chat.ID, "No plan yet. Generate one with /plan first.")
		return
	}

	userID := b.userID(msg)
	day := parts[0]
	mealIndex := slot - 1

	for _, d := range current.WeeklyMealPlan {
		if strings.EqualFold(d.Day, day) && mealIndex < len(d.Meals) {
			if err := b.favorites.TrackSwap(ctx, userID, d.Meals[mealIndex].Title); err != nil {
				log.Printf("Error tracking swapped meal: %v", err)
			}
			break
		}
	}

	response, err := b.planner.SwapMeal(ctx, userID, b.profileFor(msg.Chat.ID), current.WeeklyMealPlan, day, mealIndex)
	if err != nil {
		b.reply(msg.Chat.ID, fmt.Sprintf("❌ %v", err))
		return
	}

	b.mu.Lock()
	b.lastPlans[msg.Chat.ID] = response
	b.mu.Unlock()

	b.reply(msg.Chat.ID, formatPlan(response))
}

func (b *Bot) handleLike(ctx context.Context, msg *tgbotapi.Message, args string) {
	title := strings.TrimSpace(args)
	if title == "" {
		b.reply(msg.Chat.ID, "Usage: /like <meal title>")
		return
	}
	mealType := b.mealTypeFor(msg.Chat.ID, title)
	if err := b.favorites.AddFavorite(ctx, b.userID(msg), title, mealType); err != nil {
		log.Printf("Error adding favorite: %v", err)
		b.reply(msg.Chat.ID, "❌ Failed to save the favorite.")
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("❤️ *%s* added to favorites.", title))
}

func (b *Bot) handleSkip(ctx context.Context, msg *tgbotapi.Message, args string) {
	title := strings.TrimSpace(args)
	if title == "" {
		b.reply(msg.Chat.ID, "Usage: /skip <meal title>")
		return
	}
	if err := b.favorites.TrackSkip(ctx, b.userID(msg), title); err != nil {
		log.Printf("Error tracking skipped meal: %v", err)
		b.reply(msg.Chat.ID, "❌ Failed to record the skip.")
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("🚫 *%s* will not appear in future plans.", title))
}

func (b *Bot) handleHistory(ctx context.Context, msg *tgbotapi.Message) {
	history, err := b.favorites.History(ctx, b.userID(msg))
	if err != nil {
		log.Printf("Error getting history: %v", err)
		b.reply(msg.Chat.ID, "❌ Failed to load history.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📖 *Meal history*\n")
	sb.WriteString(fmt.Sprintf("\n❤️ Liked: %s", joinOrDash(history.Liked)))
	sb.WriteString(fmt.Sprintf("\n🔄 Swapped: %s", joinOrDash(history.Swapped)))
	sb.WriteString(fmt.Sprintf("\n🚫 Skipped: %s", joinOrDash(history.Skipped)))
	b.reply(msg.Chat.ID, sb.String())
}

// mealTypeFor resolves the slot type of a liked title from the chat's last
// plan. Unknown titles default to dinner.
func (b *Bot) mealTypeFor(chatID int64, title string) catalog.MealType {
	b.mu.Lock()
	defer b.mu.Unlock()
	if current := b.lastPlans[chatID]; current != nil {
		for _, d := range current.WeeklyMealPlan {
			for _, m := range d.Meals {
				if strings.EqualFold(m.Title, title) {
					return m.MealType
				}
			}
		}
	}
	return catalog.Dinner
}

// profileFor returns the chat's stored profile, defaulting to a maintain-goal
// medium-budget profile for chats that never configured one.
func (b *Bot) profileFor(chatID int64) profile.UserProfile {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.profiles[chatID]; ok {
		return p
	}
	return profile.UserProfile{
		FitnessGoal:      "Maintain",
		WorkoutFrequency: "1-3 times per week",
		BudgetLevel:      profile.BudgetMedium,
		CookingSkill:     "Intermediate",
	}
}

func (b *Bot) userID(msg *tgbotapi.Message) string {
	return fmt.Sprintf("tg:%d", msg.From.ID)
}

func (b *Bot) reply(chatID int64, text string) int {
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = "Markdown"
	sent, err := b.api.Send(reply)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
		return 0
	}
	return sent.MessageID
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	if messageID == 0 {
		b.reply(chatID, text)
		return
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = "Markdown"
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Failed to edit message: %v", err)
	}
}

func formatPlan(response *planner.WeeklyPlanResponse) string {
	var sb strings.Builder
	sb.WriteString("🗓️ *Your weekly meal plan*\n")
	for _, day := range response.WeeklyMealPlan {
		sb.WriteString(fmt.Sprintf("\n*%s*\n", day.Day))
		for i, m := range day.Meals {
			sb.WriteString(fmt.Sprintf("%d. %s (%s, %d kcal)\n", i+1, m.Title, m.MealType, m.Calories))
		}
	}
	sb.WriteString(fmt.Sprintf("\n💰 Cheapest: %s, total %s\n", response.WeeklyCostSummary.CheapestOption, response.WeeklyCostSummary.EstimatedTotal))
	sb.WriteString(response.NextActionToTake)
	return sb.String()
}

func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, ' '); idx > 0 {
		return text[:idx], strings.TrimSpace(text[idx:])
	}
	return text, ""
}

func joinOrDash(titles []string) string {
	if len(titles) == 0 {
		return "-"
	}
	return strings.Join(titles, ", ")
}
