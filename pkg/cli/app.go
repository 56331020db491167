package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"

	"github.com/mklimuk/minutes-pilot/pkg/ai"
	"github.com/mklimuk/minutes-pilot/pkg/api"
	"github.com/mklimuk/minutes-pilot/pkg/config"
	"github.com/mklimuk/minutes-pilot/pkg/db"
	"github.com/mklimuk/minutes-pilot/pkg/integration/calendar"
	"github.com/mklimuk/minutes-pilot/pkg/integration/discord"
	"github.com/mklimuk/minutes-pilot/pkg/integration/drive"
	"github.com/mklimuk/minutes-pilot/pkg/integration/gmail"
	googleauth "github.com/mklimuk/minutes-pilot/pkg/integration/google"
	"github.com/mklimuk/minutes-pilot/pkg/integration/telegram"
	"github.com/mklimuk/minutes-pilot/pkg/minutes"
	"github.com/mklimuk/minutes-pilot/pkg/notify"
	"github.com/mklimuk/minutes-pilot/pkg/session"
	"github.com/mklimuk/minutes-pilot/pkg/shamsi"
	"github.com/mklimuk/minutes-pilot/pkg/store"
	"github.com/mklimuk/minutes-pilot/pkg/sync"
)

// app is the state shared by every command: configuration, database and
// the loaded store.
type app struct {
	cfg   *config.Config
	db    *db.DB
	repo  *db.Repository
	store *store.Store
}

func openApp(v *viper.Viper, configPath string) (*app, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, err
	}

	database, err := db.NewDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := database.InitSchema(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	repo := db.NewRepository(database)
	st := store.New(repo)
	st.Load()

	return &app{cfg: cfg, db: database, repo: repo, store: st}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// today is the current Shamsi date in the configured time zone.
func (a *app) today() string {
	return shamsi.Today(time.Now(), a.cfg.Location())
}

// handler wires every configured integration into an API handler. The
// returned func releases what was opened.
func (a *app) handler(ctx context.Context) (*api.Handler, func()) {
	assistant, closeAI := a.assistant(ctx)
	archive, gm := a.archive()

	h := &api.Handler{
		Store:     a.store,
		Session:   session.New(),
		Assistant: assistant,
		Notifier:  a.notifier(ctx),
		Archive:   archive,
		Git:       gm,
		Calendar:  a.calendar(ctx),
		Backup:    a.backup(ctx),
		Today:     a.today,
	}
	return h, closeAI
}

func (a *app) assistant(ctx context.Context) (*ai.Assistant, func()) {
	key := a.cfg.AIKey()
	if key == "" {
		log.Printf("cli: no API key for %s, assistant disabled", a.cfg.AIProvider)
		return ai.NewAssistant(nil), func() {}
	}
	client, err := ai.NewClient(ctx, ai.Config{
		Provider: ai.Provider(a.cfg.AIProvider),
		APIKey:   key,
		Model:    a.cfg.AIModel,
	})
	if err != nil {
		log.Printf("cli: failed to create AI client: %v", err)
		return ai.NewAssistant(nil), func() {}
	}
	return ai.NewAssistant(client), func() { client.Close() }
}

func (a *app) notifier(ctx context.Context) notify.Sender {
	senders := notify.Multi{notify.LogSender{}}

	if a.cfg.GmailCredentials != "" {
		client, err := googleauth.NewHTTPClient(ctx, a.cfg.GmailCredentials, a.cfg.GmailFrom, gmail.SendScope)
		if err != nil {
			log.Printf("cli: gmail disabled: %v", err)
		} else if s, err := gmail.NewSender(ctx, client, a.cfg.GmailFrom); err != nil {
			log.Printf("cli: gmail disabled: %v", err)
		} else {
			senders = append(senders, s)
		}
	}

	if token := config.TelegramToken(); token != "" && a.cfg.TelegramChatID != 0 {
		s, err := telegram.NewSender(token, a.cfg.TelegramChatID)
		if err != nil {
			log.Printf("cli: telegram disabled: %v", err)
		} else {
			senders = append(senders, s)
		}
	}

	if token := config.DiscordToken(); token != "" && a.cfg.DiscordChannelID != "" {
		s, err := discord.NewSender(token, a.cfg.DiscordChannelID)
		if err != nil {
			log.Printf("cli: discord disabled: %v", err)
		} else {
			senders = append(senders, s)
		}
	}

	if len(senders) == 1 {
		return senders[0]
	}
	return senders
}

// archive returns nil values when no archive directory is configured.
func (a *app) archive() (*minutes.Archive, *sync.GitManager) {
	if a.cfg.ArchiveDir == "" {
		return nil, nil
	}
	archive := minutes.NewArchive(a.cfg.ArchiveDir, minutes.NewTemplateEngine(a.cfg.TemplateDir))

	gm := sync.NewGitManager(a.cfg.ArchiveDir)
	gm.SSHKeyPath = a.cfg.GitSSHKey
	if err := gm.Init(); err != nil {
		log.Printf("cli: archive commits disabled: %v", err)
		return archive, nil
	}
	return archive, gm
}

func (a *app) calendar(ctx context.Context) *calendar.Publisher {
	if a.cfg.CalendarCredentials == "" {
		return nil
	}
	srv, err := calendar.NewService(ctx, a.cfg.CalendarCredentials, a.cfg.CalendarID)
	if err != nil {
		log.Printf("cli: calendar disabled: %v", err)
		return nil
	}
	return calendar.NewPublisher(srv, a.repo)
}

func (a *app) backup(ctx context.Context) *drive.Backup {
	if a.cfg.DriveCredentials == "" || a.cfg.ArchiveDir == "" {
		return nil
	}
	srv, err := drive.NewService(ctx, a.cfg.DriveCredentials, a.cfg.DriveFolderID)
	if err != nil {
		log.Printf("cli: drive backup disabled: %v", err)
		return nil
	}
	return drive.NewBackup(srv, a.repo, a.cfg.ArchiveDir)
}
