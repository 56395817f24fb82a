package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
	"github.com/m04kA/Clinic-SchedulingService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server              ServerConfig      `toml:"server"`
	Database            DatabaseConfig    `toml:"database"`
	Logs                LogsConfig        `toml:"logs"`
	Metrics             MetricsConfig     `toml:"metrics"`
	Schedule            ScheduleConfig    `toml:"schedule"`
	PatientService      IntegrationConfig `toml:"patient_service"`
	ProfessionalService IntegrationConfig `toml:"professional_service"`
	ClinicalRecords     IntegrationConfig `toml:"clinical_records"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig фиксированное расписание генерации слотов.
// Окно и шаг едины для всех профессионалов - календарей рабочих часов сервис не ведёт.
type ScheduleConfig struct {
	DayStart               string `toml:"day_start"`                // "09:00"
	DayEnd                 string `toml:"day_end"`                  // "17:00"
	StepMinutes            int    `toml:"step_minutes"`             // 15
	DefaultDurationMinutes int    `toml:"default_duration_minutes"` // 30
}

// ToDomainSchedule конвертирует настройки расписания в доменную модель.
// Границы окна заданы строками "HH:MM" и переводятся в минуты от начала дня
func (s ScheduleConfig) ToDomainSchedule() (domain.Schedule, error) {
	start, err := types.NewTimeStringFromString(s.DayStart)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: invalid schedule day_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(s.DayEnd)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: invalid schedule day_end: %w", err)
	}

	startMinutes, err := start.Minutes()
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: invalid schedule day_start: %w", err)
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: invalid schedule day_end: %w", err)
	}

	if endMinutes <= startMinutes {
		return domain.Schedule{}, fmt.Errorf("config: schedule day_end must be after day_start")
	}

	return domain.Schedule{
		DayStartMinutes:        startMinutes,
		DayEndMinutes:          endMinutes,
		StepMinutes:            s.StepMinutes,
		DefaultDurationMinutes: s.DefaultDurationMinutes,
	}, nil
}

// IntegrationConfig настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла и заполняет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "clinic-scheduling-service"
	}
	if cfg.Schedule.DayStart == "" {
		cfg.Schedule.DayStart = "09:00"
	}
	if cfg.Schedule.DayEnd == "" {
		cfg.Schedule.DayEnd = "17:00"
	}
	if cfg.Schedule.StepMinutes == 0 {
		cfg.Schedule.StepMinutes = domain.DefaultSlotStepMinutes
	}
	if cfg.Schedule.DefaultDurationMinutes == 0 {
		cfg.Schedule.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}
}
