// ABOUTME: MCP server subcommand
// ABOUTME: Exposes marketplace search, favorites, and referral tools over stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/serviceradar/radar/handlers"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(app *App) error {
	log.Println("Starting radar MCP server...")

	listingHandlers := handlers.NewListingHandlers(app.API, app.Cache)
	favoriteHandlers := handlers.NewFavoriteHandlers(app.API, app.Cache)
	referralHandlers := handlers.NewReferralHandlers(app.API)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "radar",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_listings",
		Description: "Search marketplace listings by keyword and location, with optional price/category refinement",
	}, listingHandlers.SearchListings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_listing",
		Description: "Fetch a single listing with its description and price range",
	}, listingHandlers.GetListing)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_favorites",
		Description: "List locally favorited listings",
	}, favoriteHandlers.ListFavorites)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_favorite",
		Description: "Favorite a listing by id (stores a local snapshot)",
	}, favoriteHandlers.AddFavorite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_favorite",
		Description: "Remove a favorited listing by id",
	}, favoriteHandlers.RemoveFavorite)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_searches",
		Description: "List the recent search history (most recent first)",
	}, favoriteHandlers.RecentSearches)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_referral",
		Description: "Submit a referral request for a listing, optionally with a price offer",
	}, referralHandlers.CreateReferral)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}
