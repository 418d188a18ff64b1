package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	"github.com/SscSPs/hotel_management_app/internal/dto"
	"github.com/SscSPs/hotel_management_app/internal/utils"
	"github.com/SscSPs/hotel_management_app/internal/utils/billing"
	"github.com/urfave/cli/v2"
)

const confirmPrompt = "Confirm checkout and payment? [y/N] "

func (d *Desk) roomsCommand() *cli.Command {
	return &cli.Command{
		Name:  "rooms",
		Usage: "manage and inspect the room inventory",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "add a vacant room",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Required: true, Usage: "room number"},
					&cli.StringFlag{Name: "type", Required: true, Usage: "room type, e.g. Single"},
					&cli.StringFlag{Name: "price", Required: true, Usage: "price per night"},
				},
				Action: d.addRoom,
			},
			{
				Name:   "list",
				Usage:  "list every room",
				Action: d.listRooms,
			},
			{
				Name:      "search",
				Usage:     "find rooms by number or guest name",
				ArgsUsage: "<query>",
				Action:    d.searchRooms,
			},
			{
				Name:      "show",
				Usage:     "show one room",
				ArgsUsage: "<number>",
				Action:    d.showRoom,
			},
		},
	}
}

func (d *Desk) checkInCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkin",
		Usage: "check a guest into a vacant room",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "room", Required: true, Usage: "room number"},
			&cli.StringFlag{Name: "guest", Required: true, Usage: "guest name"},
		},
		Action: d.checkIn,
	}
}

func (d *Desk) checkOutCommand() *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "bill and check out an occupied room",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "room", Required: true, Usage: "room number"},
			&cli.StringFlag{Name: "tax", Usage: "tax percent (default from DEFAULT_TAX_PERCENT)"},
			&cli.StringFlag{Name: "discount", Usage: "discount percent (default from DEFAULT_DISCOUNT_PERCENT)"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "skip the confirmation prompt"},
		},
		Action: d.checkOut,
	}
}

func (d *Desk) exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write an .xlsx occupancy report",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: "rooms.xlsx", Usage: "report path"},
		},
		Action: d.export,
	}
}

func (d *Desk) addRoom(c *cli.Context) error {
	req := dto.CreateRoomRequest{
		RoomNumber:    c.String("number"),
		RoomType:      c.String("type"),
		PricePerNight: c.String("price"),
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}
	room, err := container.Rooms.AddRoom(ctx, req.RoomNumber, req.RoomType, req.PricePerNight)
	if err != nil {
		return err
	}
	if err := container.Rooms.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Added room %s (%s, %s per night)\n", room.Number, room.Type, utils.FormatAmount(room.PricePerNight))
	return nil
}

func (d *Desk) listRooms(c *cli.Context) error {
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}
	return d.printRooms(container.Rooms.ListAll(ctx))
}

func (d *Desk) searchRooms(c *cli.Context) error {
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}
	rooms := container.Rooms.Search(ctx, strings.Join(c.Args().Slice(), " "))
	if len(rooms) == 0 {
		fmt.Fprintln(d.out, "No matching rooms")
		return nil
	}
	return d.printRooms(rooms)
}

func (d *Desk) showRoom(c *cli.Context) error {
	number := c.Args().First()
	if strings.TrimSpace(number) == "" {
		return fmt.Errorf("room number is required: %w", apperrors.ErrValidation)
	}
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}
	room, ok := container.Rooms.FindByRoomNumber(ctx, number)
	if !ok {
		if hints := container.Rooms.SuggestRoomNumbers(ctx, number); len(hints) > 0 {
			return fmt.Errorf("room %s (did you mean %s?): %w", number, strings.Join(hints, ", "), apperrors.ErrNotFound)
		}
		return fmt.Errorf("room %s: %w", number, apperrors.ErrNotFound)
	}
	return d.printRooms([]domain.Room{room})
}

func (d *Desk) checkIn(c *cli.Context) error {
	req := dto.CheckInRequest{GuestName: c.String("guest")}
	if err := dto.Validate(req); err != nil {
		return err
	}
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}
	room, err := container.Rooms.CheckIn(ctx, c.String("room"), req.GuestName)
	if err != nil {
		return err
	}
	if err := container.Rooms.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Checked in %s to room %s at %s\n", room.GuestName(), room.Number, room.CheckedInAt())
	return nil
}

func (d *Desk) checkOut(c *cli.Context) error {
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}

	tax := d.cfg.DefaultTaxPercent
	if c.IsSet("tax") {
		tax = billing.ParsePercent(c.String("tax"))
	}
	discount := d.cfg.DefaultDiscountPercent
	if c.IsSet("discount") {
		discount = billing.ParsePercent(c.String("discount"))
	}

	confirm := func(b domain.Bill) bool {
		fmt.Fprint(d.out, billing.Receipt(b))
		if c.Bool("yes") {
			return true
		}
		fmt.Fprint(d.out, confirmPrompt)
		line, _ := d.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}

	bill, err := container.Rooms.CheckOut(ctx, c.String("room"), tax, discount, confirm)
	if errors.Is(err, apperrors.ErrCancelled) {
		fmt.Fprintf(d.out, "Checkout cancelled for room %s\n", bill.RoomNumber)
		return nil
	}
	if err != nil {
		return err
	}
	if err := container.Rooms.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(d.out, "Checked out room %s. Total paid: %s\n", bill.RoomNumber, utils.FormatAmount(bill.Total))
	return nil
}

func (d *Desk) export(c *cli.Context) error {
	ctx, container, err := d.open(c)
	if err != nil {
		return err
	}
	path := c.String("out")
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewIOError("export", path, err)
	}
	rooms := container.Rooms.ListAll(ctx)
	if err := container.Reports.ExportRooms(ctx, f, rooms); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return apperrors.NewIOError("export", path, err)
	}
	fmt.Fprintf(d.out, "Exported %d rooms to %s\n", len(rooms), path)
	return nil
}

func (d *Desk) printRooms(rooms []domain.Room) error {
	tw := tabwriter.NewWriter(d.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tTYPE\tPRICE\tSTATUS\tGUEST\tCHECK-IN\tCHECK-OUT")
	for _, r := range rooms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Number, r.Type, utils.FormatAmount(r.PricePerNight), r.Status(),
			r.GuestName(), r.CheckedInAt(), r.CheckedOutAt)
	}
	return tw.Flush()
}
