// Command submit drives one recipe submission against a running server:
// it requests upload credentials, uploads each image directly to storage,
// then persists the recipe record.
//
//	submit -server http://localhost:8080 -recipe tea.json photo1.jpg photo2.jpg
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"recipe-service/internal/client"
	"recipe-service/internal/models"
)

type recipeFile struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Ingredients  []models.Ingredient `json:"ingredients"`
	Instructions []string            `json:"instructions"`
	Tags         []string            `json:"tags"`
	PrepTime     string              `json:"prepTime"`
	CookTime     string              `json:"cookTime"`
	Servings     int                 `json:"servings"`
	Language     string              `json:"language"`
	Notes        string              `json:"notes"`
}

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the recipe service")
	publicBase := flag.String("public-base", "", "public base URL of the image bucket (default: server URL)")
	recipePath := flag.String("recipe", "", "path to a recipe JSON file")
	flag.Parse()

	if *recipePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*recipePath)
	if err != nil {
		log.Fatalf("read recipe: %v", err)
	}
	var rf recipeFile
	if err := json.Unmarshal(raw, &rf); err != nil {
		log.Fatalf("parse recipe: %v", err)
	}
	if rf.Language == "" {
		rf.Language = "en"
	}

	form := client.Form{
		Title:        rf.Title,
		Description:  rf.Description,
		Ingredients:  rf.Ingredients,
		Instructions: rf.Instructions,
		Tags:         rf.Tags,
		PrepTime:     rf.PrepTime,
		CookTime:     rf.CookTime,
		Servings:     rf.Servings,
		Language:     rf.Language,
		Notes:        rf.Notes,
	}
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read image %s: %v", path, err)
		}
		ct := mime.TypeByExtension(filepath.Ext(path))
		if ct == "" {
			ct = "application/octet-stream"
		}
		form.Files = append(form.Files, client.File{
			Name:        filepath.Base(path),
			ContentType: ct,
			Data:        data,
		})
	}

	opts := []client.Option{
		client.WithStateFunc(func(s client.State) { log.Printf("state: %s", s) }),
	}
	if *publicBase != "" {
		opts = append(opts, client.WithPublicBaseURL(*publicBase))
	}
	c := client.New(*server, opts...)

	rec, err := c.Submit(context.Background(), form)
	if err != nil {
		log.Fatalf("submission failed: %v", err)
	}
	out, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(out))
}
