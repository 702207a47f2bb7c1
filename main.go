package main

import (
	"fmt"
	"log"
	"os"

	"reqparse/internal/bootstrap"
	"reqparse/internal/config"
	"reqparse/internal/http/request"
	"reqparse/internal/render"
	"reqparse/internal/version"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Println(version.GetVersion())
			return
		case "dump":
			if len(os.Args) < 3 {
				log.Fatalf("Usage: %s dump <file>", os.Args[0])
			}
			if err := dump(os.Args[2]); err != nil {
				log.Fatalf("Failed to dump request: %s", err)
			}
			return
		}
	}

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	app, err := bootstrap.New(conf)
	if err != nil {
		log.Fatalf("Failed to initialize application: %s", err)
	}

	log.Printf("Starting %s", version.GetVersion())
	if err = app.Run(); err != nil {
		log.Fatalf("Application error: %s", err)
	}
}

func dump(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	req, err := request.NewRequest(raw)
	if err != nil {
		return err
	}

	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	fmt.Println(render.Request(req))
	return nil
}
