package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/YuliaRizki/nailBook/internal/planner"
)

const usage = `nailbook planner

Usage:
  planner login    -email ... -password ...
  planner logout
  planner register -name ... -email ... -password ...
  planner day      [-date 2006-01-02]
  planner add      -name ... -time 15:04 [-date ...] [-phone ...] [-service ...] [-price ...] [-pay Cash|QRIS|Transfer] [-notes ...] [-image path]
  planner delete   -id N
  planner income   -amount N [-date ...] [-source ...]
  planner month    [-year N] [-month 1-12]
  planner total
  planner watch

Environment:
  NAILBOOK_API   base URL of the API (default http://localhost:8080)
`

type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) { fmt.Println("✔", msg) }
func (consoleNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "✘", msg) }

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	baseURL := os.Getenv("NAILBOOK_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := planner.NewClient(baseURL)
	if token, err := loadToken(); err == nil {
		client.SetToken(token)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, client, os.Args[2:])
	case "logout":
		err = runLogout(client)
	case "register":
		err = runRegister(ctx, client, os.Args[2:])
	case "day":
		err = runDay(ctx, client, os.Args[2:])
	case "add":
		err = runAdd(ctx, client, os.Args[2:])
	case "delete":
		err = runDelete(ctx, client, os.Args[2:])
	case "income":
		err = runIncome(ctx, client, os.Args[2:])
	case "month":
		err = runMonth(ctx, client, os.Args[2:])
	case "total":
		err = runTotal(ctx, client)
	case "watch":
		err = runWatch(ctx, client)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runLogin(ctx context.Context, client *planner.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	token, err := client.Login(ctx, *email, *password)
	if err != nil {
		if strings.Contains(err.Error(), "Email not confirmed") {
			return fmt.Errorf("check your email for confirmation before logging in")
		}
		return err
	}

	if err := saveToken(token); err != nil {
		return err
	}

	me, err := client.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome, %s\n", me.DisplayName)
	return nil
}

func runLogout(client *planner.Client) error {
	client.Logout()

	p, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func runRegister(ctx context.Context, client *planner.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (min 6 chars)")
	fs.Parse(args)

	if err := client.Register(ctx, *name, *email, *password); err != nil {
		return err
	}
	fmt.Println("Registration successful! Please login.")
	return nil
}

func runDay(ctx context.Context, client *planner.Client, args []string) error {
	fs := flag.NewFlagSet("day", flag.ExitOnError)
	date := fs.String("date", time.Now().Format("2006-01-02"), "day to show")
	fs.Parse(args)

	day := planner.NewDayList(client, consoleNotifier{}, *date)
	if err := day.Refresh(ctx); err != nil {
		return err
	}

	bookings := day.Bookings()
	if len(bookings) == 0 {
		fmt.Println("No appointments for this day yet.")
		return nil
	}

	for _, b := range bookings {
		fmt.Printf("#%-6d %s  %-20s %-20s %10s  %s\n",
			b.ID, b.Time, b.ClientName, b.ServiceType, formatRupiah(b.PriceValue()), b.PaymentMethod)
	}
	fmt.Printf("%d clients • %s\n", day.ClientCount(), formatRupiah(day.DailyRevenue()))
	return nil
}

func runAdd(ctx context.Context, client *planner.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "client name")
	phone := fs.String("phone", "", "client phone")
	service := fs.String("service", "Gel Manicure", "service type")
	date := fs.String("date", time.Now().Format("2006-01-02"), "appointment date")
	tm := fs.String("time", "", "appointment time (15:04)")
	notes := fs.String("notes", "", "notes")
	price := fs.Int64("price", 0, "price in rupiah")
	pay := fs.String("pay", "Cash", "payment method")
	imagePath := fs.String("image", "", "reference image path")
	fs.Parse(args)

	in := planner.NewBooking{
		ClientName:  *name,
		ClientPhone: *phone,
		ServiceType: *service,
		Date:        *date,
		Time:        *tm,
		Notes:       *notes,
		Payment:     *pay,
	}
	if *price > 0 {
		in.Price = price
	}
	if *imagePath != "" {
		data, err := os.ReadFile(*imagePath)
		if err != nil {
			return err
		}
		in.ImageName = filepath.Base(*imagePath)
		in.ImageData = data
	}

	day := planner.NewDayList(client, consoleNotifier{}, *date)
	if _, err := day.Submit(ctx, in); err != nil {
		return err
	}
	day.Wait()
	return nil
}

func runDelete(ctx context.Context, client *planner.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "appointment id")
	date := fs.String("date", time.Now().Format("2006-01-02"), "day the appointment is on")
	fs.Parse(args)

	day := planner.NewDayList(client, consoleNotifier{}, *date)
	if err := day.Refresh(ctx); err != nil {
		return err
	}

	var label string
	for _, b := range day.Bookings() {
		if b.ID == *id {
			label = b.ClientName
		}
	}
	if label == "" {
		return fmt.Errorf("appointment %d not found on %s", *id, *date)
	}

	fmt.Printf("Delete the appointment for %s? This cannot be undone. [y/N] ", label)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "y" {
		fmt.Println("Cancelled.")
		return nil
	}

	return day.Delete(ctx, *id)
}

func runIncome(ctx context.Context, client *planner.Client, args []string) error {
	fs := flag.NewFlagSet("income", flag.ExitOnError)
	amount := fs.Int64("amount", 0, "amount in rupiah")
	date := fs.String("date", time.Now().Format("2006-01-02"), "income date")
	source := fs.String("source", "", "where it came from")
	fs.Parse(args)

	d, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return err
	}

	month := planner.NewMonthView(client, consoleNotifier{}, d.Year(), d.Month())
	if _, err := month.SubmitIncome(ctx, planner.NewIncome{
		Amount: *amount,
		Date:   *date,
		Source: *source,
	}); err != nil {
		return err
	}
	month.Wait()
	return nil
}

func runMonth(ctx context.Context, client *planner.Client, args []string) error {
	now := time.Now()
	fs := flag.NewFlagSet("month", flag.ExitOnError)
	year := fs.Int("year", now.Year(), "year")
	monthNum := fs.Int("month", int(now.Month()), "month (1-12)")
	fs.Parse(args)

	view := planner.NewMonthView(client, consoleNotifier{}, *year, time.Month(*monthNum))
	if err := view.Refresh(ctx); err != nil {
		return err
	}

	entries, total := view.Breakdown()
	if len(entries) == 0 {
		fmt.Println("No revenue recorded for this month.")
		return nil
	}

	for _, e := range entries {
		mark := ""
		if e.ExtraIncome {
			mark = "  +Extra Income"
		}
		clients := "clients"
		if e.Clients == 1 {
			clients = "client"
		}
		fmt.Printf("%s  %2d %s  %12s%s\n", e.Date, e.Clients, clients, formatRupiah(e.Total), mark)
	}
	fmt.Printf("Total earned: %s\n", formatRupiah(total))
	return nil
}

func runTotal(ctx context.Context, client *planner.Client) error {
	win, err := client.RevenueWindow(ctx, "", "")
	if err != nil {
		return err
	}
	total := planner.LifetimeTotal(win.Appointments, win.Incomes)
	fmt.Printf("All-time revenue: %s\n", formatRupiah(total))
	return nil
}

func runWatch(ctx context.Context, client *planner.Client) error {
	ws := planner.NewWorkspace(client, consoleNotifier{}, time.Now())
	if err := ws.RefreshAll(ctx); err != nil {
		return err
	}

	fmt.Printf("Watching %s  (%d clients, %s today, %s all-time)\n",
		ws.Day.Date(), ws.Day.ClientCount(),
		formatRupiah(ws.Day.DailyRevenue()), formatRupiah(ws.LifetimeRevenue()))

	return ws.Watch(ctx, client)
}

// --------- token cache ---------

func tokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nailbook", "token"), nil
}

func loadToken() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func saveToken(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// formatRupiah groups digits the Indonesian way: Rp 1.250.000.
func formatRupiah(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp " + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
