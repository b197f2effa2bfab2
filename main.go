package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/shadowgov/server/chat"
	"github.com/shadowgov/server/game"
	"github.com/shadowgov/server/manager"
	"github.com/shadowgov/server/network"
	"github.com/shadowgov/server/render"
)

type config struct {
	Addr         string `env:"ADDR" envDefault:":9999"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	RulesFile    string `env:"RULES_FILE"`
}

func main() {
	simulate := flag.Bool("simulate", false, "run one autonomous match on the console and exit")
	seats := flag.Int("seats", 7, "number of seats in simulation mode")
	seed := flag.Int64("seed", 0, "match seed in simulation mode, 0 for random")
	flag.Parse()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal(err)
	}

	rules := game.DefaultRules()
	if cfg.RulesFile != "" {
		var err error
		if rules, err = game.LoadRules(cfg.RulesFile); err != nil {
			log.Fatal(err)
		}
	}

	var chatGen game.ChatGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := chat.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal(err)
		}
		defer gemini.Close()
		chatGen = gemini
	}

	m := manager.New(rules, chatGen)
	if *simulate {
		if err := runSimulation(m, *seats, *seed); err != nil {
			log.Fatal(err)
		}
		return
	}

	server := network.NewWebsocketServer(cfg.Addr, m)
	log.Fatal(server.Serve())
}

// runSimulation plays a single all-autonomous match to completion, rendering
// every journal event and chat message to the console.
func runSimulation(m *manager.Manager, seats int, seed int64) error {
	match, err := m.CreateMatch(nil, seats, seed)
	if err != nil {
		return err
	}

	names := map[string]string{}
	for _, p := range match.Game.Players {
		names[p.ID] = p.Name
	}
	match.Subscribe("console", func(e game.Event) {
		fmt.Println(render.Event(e, names))
	})
	match.SubscribeChat("console", func(msg manager.ChatMessage) {
		fmt.Printf("%s: %s\n", names[msg.SpeakerID], msg.Message)
	})

	if _, err := match.Start(); err != nil {
		return err
	}
	fmt.Println(render.Summary(match.Game.PublicView(), names))
	return nil
}
