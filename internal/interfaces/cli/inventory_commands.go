package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jhoicas/nautica-cli/internal/application/dto"
	"github.com/jhoicas/nautica-cli/internal/domain"
)

func (a *App) runInventory(args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}
	switch args[0] {
	case "view":
		return a.cmdInventoryView()
	case "search":
		return a.cmdInventorySearch(args[1:])
	case "product-details":
		return a.cmdProductDetails(args[1:])
	case "update":
		return a.cmdInventoryUpdate(args[1:])
	case "categories":
		return a.cmdCategories()
	}
	fmt.Fprintf(a.Out, "Unknown inventory command %q\n", args[0])
	return exitUsage
}

func (a *App) cmdInventoryView() int {
	views, err := a.inventory.View(a.Ctx)
	if err != nil {
		return a.reportAccess(err)
	}
	for _, view := range views {
		fmt.Fprintf(a.Out, "Inventory: %s\n", view.Description)
		for _, p := range view.Products {
			fmt.Fprintf(a.Out, "- %s: %s (%s) - $%s\n", p.SKU, p.Name, p.CategoryName, p.Price)
		}
	}
	return exitOK
}

func (a *App) cmdInventorySearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	var sku string
	var categoryID int
	fs.StringVar(&sku, "sku", "", "Product SKU to search for")
	fs.StringVar(&sku, "s", "", "Product SKU (shorthand)")
	fs.IntVar(&categoryID, "category-id", 0, "Category ID to filter products")
	fs.IntVar(&categoryID, "c", 0, "Category ID (shorthand)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	in := dto.SearchRequest{SKU: sku}
	if categoryID != 0 {
		in.CategoryID = &categoryID
	}
	resp, err := a.inventory.Search(a.Ctx, in)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(a.Out, "Search filters were not provided")
		return exitOK
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(a.Out, "Product not found")
		return exitOK
	case err != nil:
		return a.reportAccess(err)
	}
	if resp.CategoryLabel != "" {
		fmt.Fprintln(a.Out, resp.CategoryLabel)
	}
	for _, view := range resp.Matches {
		fmt.Fprintf(a.Out, "Inventory: %s\n", view.Description)
		for _, p := range view.Products {
			fmt.Fprintf(a.Out, "- %s (%s) - %s - $%s\n", p.Name, p.SKU, p.Description, p.Price)
		}
	}
	return exitOK
}

func (a *App) cmdProductDetails(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.Out, "Usage: nautica inventory product-details SKU")
		return exitUsage
	}
	details, err := a.inventory.Details(a.Ctx, args[0])
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(a.Out, "Product not found")
		return exitOK
	case err != nil:
		return a.reportAccess(err)
	}
	fmt.Fprintf(a.Out, "%s\n", details)
	return exitOK
}

func (a *App) cmdInventoryUpdate(args []string) int {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	var in dto.UpdateProductRequest
	fs.StringVar(&in.SKU, "sku", "", "SKU of the product to update")
	fs.StringVar(&in.SKU, "s", "", "SKU (shorthand)")
	fs.StringVar(&in.Payload, "product", "", "JSON string with product data to update")
	fs.StringVar(&in.Payload, "p", "", "JSON product data (shorthand)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	applied, err := a.inventory.Update(a.Ctx, in, a.confirm)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		fmt.Fprintln(a.Out, "Invalid JSON format for product data")
		return exitOK
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(a.Out, "Product not found")
		return exitOK
	case err != nil:
		return a.reportAccess(err)
	case !applied:
		fmt.Fprintln(a.Out, "Update cancelled")
		return exitOK
	}
	fmt.Fprintln(a.Out, "Product updated successfully")
	return exitOK
}

func (a *App) cmdCategories() int {
	categories, err := a.inventory.Categories(a.Ctx)
	if err != nil {
		return a.reportAccess(err)
	}
	fmt.Fprintln(a.Out, "Product categories:")
	for _, c := range categories {
		fmt.Fprintln(a.Out, c.Label)
	}
	return exitOK
}
