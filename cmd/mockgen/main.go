package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/parqr/parqr-backend/internal/config"
	carRepo "github.com/parqr/parqr-backend/internal/infra/storage/car"
	sessionRepo "github.com/parqr/parqr-backend/internal/infra/storage/session"
	userRepo "github.com/parqr/parqr-backend/internal/infra/storage/user"
	generateMockData "github.com/parqr/parqr-backend/internal/usecase/generate_mock_data"
	"github.com/parqr/parqr-backend/pkg/logger"
	"github.com/parqr/parqr-backend/pkg/simpletxmanager"
)

// stdinConfirmer запрашивает подтверждение у оператора через stdin
type stdinConfirmer struct {
	reader *bufio.Reader
}

func newStdinConfirmer() *stdinConfirmer {
	return &stdinConfirmer{reader: bufio.NewReader(os.Stdin)}
}

// Confirm печатает вопрос и читает ответ. Подтверждением считается
// только явное "y" или "yes" (без учета регистра). EOF (закрытый или
// пустой stdin, неинтерактивный запуск) трактуется как отказ, не ошибка.
func (c *stdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)

	line, err := c.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func main() {
	configPath := flag.String("config", "config.toml", "путь к конфигурационному файлу")
	users := flag.Int("users", 10, "количество пользователей")
	minCars := flag.Int("min-cars", 1, "минимум автомобилей на пользователя")
	maxCars := flag.Int("max-cars", 3, "максимум автомобилей на пользователя")
	sessions := flag.Int("sessions", 30, "количество парковочных сессий")
	assumeYes := flag.Bool("y", false, "не запрашивать подтверждение для непустой базы")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	useCase := generateMockData.NewUseCase(
		userRepo.NewRepository(db),
		carRepo.NewRepository(db),
		sessionRepo.NewRepository(db),
		simpletxmanager.NewTransactionManager(db),
		newStdinConfirmer(),
		log,
	)

	summary, err := useCase.Execute(context.Background(), &generateMockData.Request{
		Users:          *users,
		MinCarsPerUser: *minCars,
		MaxCarsPerUser: *maxCars,
		Sessions:       *sessions,
		AssumeYes:      *assumeYes,
	})
	if err != nil {
		if errors.Is(err, generateMockData.ErrAborted) {
			fmt.Println("Aborted, no data written.")
			return
		}
		log.Fatal("Mock data generation failed: %v", err)
	}

	fmt.Println("Mock data generated successfully:")
	fmt.Printf("  users created:     %d\n", summary.UsersCreated)
	fmt.Printf("  cars created:      %d\n", summary.CarsCreated)
	fmt.Printf("  sessions created:  %d (active: %d, completed: %d)\n",
		summary.SessionsCreated, summary.ActiveCreated, summary.CompletedCreated)
	fmt.Println("Database totals:")
	fmt.Printf("  users:             %d\n", summary.TotalUsers)
	fmt.Printf("  cars:              %d\n", summary.TotalCars)
	fmt.Printf("  sessions:          %d (active: %d)\n", summary.TotalSessions, summary.TotalActive)
}
