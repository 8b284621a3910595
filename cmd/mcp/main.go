// The MCP adapter re-exposes the booking API to tool-calling clients over
// stdio. It is a pure proxy: every tool call goes through the HTTP API, so
// validation and conflict semantics are identical for both surfaces.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"meetingroom/internal/apiclient"
	"meetingroom/internal/domain"
	"meetingroom/internal/modules/booking"
)

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("BOOKING_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	client := apiclient.New(baseURL)

	s := server.NewMCPServer("meeting-room-booking", "1.0.0")
	registerTools(s, client)

	// stdout carries the protocol; log to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	slog.Info("meeting room booking MCP server running", "api", baseURL)

	if err := server.ServeStdio(s); err != nil {
		slog.Error("mcp server stopped", "error", err)
		os.Exit(1)
	}
}

func registerTools(s *server.MCPServer, client *apiclient.Client) {
	s.AddTool(
		mcp.NewTool("get_rooms",
			mcp.WithDescription("Get all available meeting rooms"),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			rooms, err := client.Rooms(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			lines := make([]string, 0, len(rooms))
			for _, r := range rooms {
				lines = append(lines, fmt.Sprintf("- %s (ID: %s): Capacity %d people, Floor %d",
					r.Name, r.ID, r.Capacity, r.Floor))
			}
			return mcp.NewToolResultText("Available meeting rooms:\n" + strings.Join(lines, "\n")), nil
		},
	)

	s.AddTool(
		mcp.NewTool("get_bookings",
			mcp.WithDescription("Get all bookings with optional filters by room ID and date"),
			mcp.WithString("roomId", mcp.Description("Optional room ID to filter bookings")),
			mcp.WithString("date", mcp.Description("Optional date to filter bookings (YYYY-MM-DD format)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			bookings, err := client.Bookings(ctx, req.GetString("roomId", ""), req.GetString("date", ""))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if len(bookings) == 0 {
				return mcp.NewToolResultText("No bookings found."), nil
			}

			lines := make([]string, 0, len(bookings))
			for _, b := range bookings {
				lines = append(lines, formatBooking(b))
			}
			return mcp.NewToolResultText("Current bookings:\n\n" + strings.Join(lines, "\n\n")), nil
		},
	)

	s.AddTool(
		mcp.NewTool("create_booking",
			mcp.WithDescription("Create a new meeting room booking"),
			mcp.WithString("roomId", mcp.Required(), mcp.Description("ID of the room to book")),
			mcp.WithString("userName", mcp.Required(), mcp.Description("Name of the person making the booking")),
			mcp.WithString("userEmail", mcp.Required(), mcp.Description("Email of the person making the booking")),
			mcp.WithString("startTime", mcp.Required(), mcp.Description("Start time of the booking (ISO 8601 format)")),
			mcp.WithString("endTime", mcp.Required(), mcp.Description("End time of the booking (ISO 8601 format)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			roomID, err := req.RequireString("roomId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			userName, err := req.RequireString("userName")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			userEmail, err := req.RequireString("userEmail")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			startTime, err := req.RequireString("startTime")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			endTime, err := req.RequireString("endTime")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			b, err := client.CreateBooking(ctx, booking.CreateBookingRequest{
				RoomID:    roomID,
				User:      booking.UserPayload{Name: userName, Email: userEmail},
				StartTime: startTime,
				EndTime:   endTime,
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText("Booking created successfully!\n\nDetails:\n" + formatBooking(*b)), nil
		},
	)

	s.AddTool(
		mcp.NewTool("delete_booking",
			mcp.WithDescription("Delete a booking by ID"),
			mcp.WithString("bookingId", mcp.Required(), mcp.Description("ID of the booking to delete")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			bookingID, err := req.RequireString("bookingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := client.DeleteBooking(ctx, bookingID); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Booking with ID %s has been deleted successfully.", bookingID)), nil
		},
	)

	s.AddTool(
		mcp.NewTool("get_available_time_slots",
			mcp.WithDescription("Get available time slots for a room on a specific date"),
			mcp.WithString("roomId", mcp.Required(), mcp.Description("ID of the room")),
			mcp.WithString("date", mcp.Required(), mcp.Description("Date to check availability (YYYY-MM-DD format)")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			roomID, err := req.RequireString("roomId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			date, err := req.RequireString("date")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			slots, err := client.AvailableSlots(ctx, roomID, date)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if len(slots) == 0 {
				return mcp.NewToolResultText(fmt.Sprintf(
					"No available time slots found for room %s on %s.", roomID, date)), nil
			}

			lines := make([]string, 0, len(slots))
			for _, s := range slots {
				lines = append(lines, fmt.Sprintf("%s - %s",
					s.Start.Format("15:04"), s.End.Format("15:04")))
			}
			return mcp.NewToolResultText(fmt.Sprintf(
				"Available time slots for room %s on %s:\n%s", roomID, date, strings.Join(lines, "\n"))), nil
		},
	)
}

func formatBooking(b domain.Booking) string {
	return fmt.Sprintf(
		"- Booking ID: %s\n  Room: %s\n  User: %s (%s)\n  Time: %s to %s\n  Created: %s",
		b.ID,
		b.RoomName,
		b.User.Name,
		b.User.Email,
		b.StartTime.Format(time.RFC3339),
		b.EndTime.Format(time.RFC3339),
		b.CreatedAt.Format(time.RFC3339),
	)
}
