package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// ListCategoriesCmd lists all categories.
type ListCategoriesCmd struct{}

func (cmd *ListCategoriesCmd) Run(globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	cats, err := client.ListCategories()
	if err != nil {
		return apiError(err)
	}

	if globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(cats)
	}

	for _, c := range cats {
		fmt.Fprintf(os.Stdout, "[%d] %s (color=%s)\n", c.ID, c.Name, c.Color)
	}
	return nil
}

// CreateCategoryCmd creates a new category.
type CreateCategoryCmd struct {
	Name  string `arg:"" help:"Name of the category."`
	Color string `help:"Color in hex, e.g. #CCCCCC." default:"#CCCCCC"`
}

func (cmd *CreateCategoryCmd) Run(globals *Globals) error {
	client, err := newClient(globals)
	if err != nil {
		return err
	}

	cat, err := client.CreateCategory(cmd.Name, cmd.Color)
	if err != nil {
		return apiError(err)
	}

	if globals.JSON {
		return json.NewEncoder(os.Stdout).Encode(cat)
	}

	fmt.Fprintf(os.Stdout, "Created category [ID %d] %s\n", cat.ID, cat.Name)
	return nil
}
