package main

import (
	"context"
	"log"
	"time"

	"github.com/lpernett/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"adaptiveui/internal/config"
	"adaptiveui/internal/model"
	"adaptiveui/internal/repository"
)

func devicePtr(d model.DeviceType) *model.DeviceType { return &d }
func timePtr(t model.TimeOfDay) *model.TimeOfDay     { return &t }

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	db := client.Database(cfg.MongoDB)
	ruleRepo := repository.NewRuleRepo(db)
	componentRepo := repository.NewComponentRepo(db)

	count, err := ruleRepo.Count(ctx, false)
	if err != nil {
		log.Fatalf("failed to count rules: %v", err)
	}
	if count > 0 {
		log.Printf("rule store already has %d rules, skipping seed", count)
		return
	}

	rules := []*model.AdaptationRule{
		{
			Name:        "Mobile Morning Rule",
			Description: "Compact layout with quick tasks for mobile users in the morning",
			Conditions: model.RuleConditions{
				DeviceType: devicePtr(model.DeviceMobile),
				TimeOfDay:  timePtr(model.TimeMorning),
			},
			Actions: model.RuleActions{
				ShowComponents: []string{"quick_tasks"},
				Layout:         "compact",
			},
			Priority: 10,
			Enabled:  true,
		},
		{
			Name:        "Evening Dark Theme",
			Description: "Dark relaxed layout for evening sessions",
			Conditions: model.RuleConditions{
				TimeOfDay: timePtr(model.TimeEvening),
			},
			Actions: model.RuleActions{
				Theme:  "dark",
				Layout: "relaxed",
			},
			Priority: 5,
			Enabled:  true,
		},
	}

	for _, rule := range rules {
		id, err := ruleRepo.Create(ctx, rule)
		if err != nil {
			log.Fatalf("failed to seed rule %q: %v", rule.Name, err)
		}
		log.Printf("seeded rule %q (%s)", rule.Name, id)
	}

	components := []*model.Component{
		{
			Name:         "Quick Tasks Widget",
			Type:         "widget",
			Description:  "Shows the user's pending quick tasks",
			HTMLTemplate: `<div class="quick-tasks"><h3>Quick Tasks</h3><ul id="task-list"></ul></div>`,
			CSSStyles:    `.quick-tasks { padding: 10px; border-radius: 8px; }`,
		},
		{
			Name:         "CTA Button",
			Type:         "button",
			Description:  "Primary call-to-action button",
			HTMLTemplate: `<button class="cta-button">Get Started</button>`,
			CSSStyles:    `.cta-button { background: #2563eb; color: #fff; padding: 12px 24px; }`,
		},
	}

	for _, component := range components {
		id, err := componentRepo.Create(ctx, component)
		if err != nil {
			log.Fatalf("failed to seed component %q: %v", component.Name, err)
		}
		log.Printf("seeded component %q (%s)", component.Name, id)
	}

	log.Println("seed complete")
}
