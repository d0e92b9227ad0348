package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"braik-api/internal/config"
	"braik-api/internal/database"
	"braik-api/internal/logger"
	"braik-api/internal/models"
	"braik-api/internal/repository"
	"braik-api/internal/service"
	"braik-api/internal/storage"
	"braik-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// seedPassword is shared by every seeded account.
const seedPassword = "password123"

type seedUser struct {
	email string
	name  string
	admin bool
	role  models.Role
}

var seedUsers = []seedUser{
	{email: "ops@braik.io", name: "Platform Ops", admin: true},
	{email: "coach@example.com", name: "Jordan Reyes", role: models.RoleHeadCoach},
	{email: "assistant@example.com", name: "Sam Okafor", role: models.RoleAssistantCoach},
	{email: "player@example.com", name: "Riley Chen", role: models.RolePlayer},
	{email: "parent@example.com", name: "Morgan Chen", role: models.RoleParent},
}

type seeder struct {
	db  *mongo.Database
	s3  *storage.S3Client
	log *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Environment: cfg.Environment, Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting seed")
	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer mongoDB.Close()

	s3Client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
	})
	if err != nil {
		log.Fatal("connect s3", zap.Error(err))
	}
	if err := s3Client.EnsureBucket(ctx); err != nil {
		log.Warn("bucket unavailable, documents will stay pending", zap.Error(err))
	}

	s := &seeder{db: mongoDB.Database, s3: s3Client, log: log}
	if err := s.run(ctx, cfg.AIDefaultCredits); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed completed successfully")
}

func (s *seeder) run(ctx context.Context, defaultCredits int64) error {
	if err := s.clear(ctx); err != nil {
		return err
	}

	users, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}
	coach := users["coach@example.com"]

	team, err := s.seedTeam(ctx, coach, users, defaultCredits)
	if err != nil {
		return err
	}
	if err := s.seedAnnouncements(ctx, team.ID, coach.ID); err != nil {
		return err
	}
	if err := s.seedDocuments(ctx, team.ID, coach.ID); err != nil {
		return err
	}
	return s.seedConfig(ctx, users["ops@braik.io"].ID, defaultCredits)
}

func (s *seeder) clear(ctx context.Context) error {
	collections := []string{
		repository.CollectionUsers,
		repository.CollectionTeams,
		repository.CollectionMemberships,
		repository.CollectionInvitations,
		repository.CollectionAnnouncements,
		repository.CollectionDocuments,
		repository.CollectionAuditLogs,
		repository.CollectionAdminAuditLogs,
		repository.CollectionAIUsage,
		repository.CollectionAIUsageRecords,
		repository.CollectionAIActionProposals,
		repository.CollectionImpersonationSessions,
		repository.CollectionSystemConfig,
		repository.CollectionSystemConfigCounters,
	}
	for _, name := range collections {
		if _, err := s.db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

func (s *seeder) seedUsers(ctx context.Context) (map[string]*models.User, error) {
	repo := repository.NewUserRepository(s.db)

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	users := make(map[string]*models.User, len(seedUsers))
	for _, su := range seedUsers {
		user := &models.User{Email: su.email, Password: hash, Name: su.name}
		if su.admin {
			user.PlatformRole = models.PlatformRoleAdmin
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", su.email, err)
		}
		users[su.email] = user
	}

	s.log.Info("seeded users", zap.Int("count", len(users)))
	return users, nil
}

func (s *seeder) seedTeam(ctx context.Context, owner *models.User, users map[string]*models.User, credits int64) (*models.Team, error) {
	teams := repository.NewTeamRepository(s.db)
	memberships := repository.NewMembershipRepository(s.db)

	team := &models.Team{
		Name:          "Westview Varsity Football",
		Slug:          "westview-varsity-football",
		Sport:         "football",
		OwnerID:       owner.ID,
		AIEnabled:     true,
		BaseAICredits: credits,
	}
	if err := teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	now := time.Now().UTC()
	for _, su := range seedUsers {
		if su.role == "" {
			continue
		}
		membership := &models.Membership{
			TeamID:   team.ID,
			UserID:   users[su.email].ID,
			Role:     su.role,
			JoinedAt: now,
		}
		if su.role == models.RoleAssistantCoach {
			membership.Permissions = models.MembershipPermissions{CoordinatorType: "offensive", PositionGroups: []string{"QB", "WR"}}
		}
		if err := memberships.Create(ctx, membership); err != nil {
			return nil, fmt.Errorf("create membership for %s: %w", su.email, err)
		}
	}

	s.log.Info("seeded team", zap.String("slug", team.Slug))
	return team, nil
}

func (s *seeder) seedAnnouncements(ctx context.Context, teamID, authorID primitive.ObjectID) error {
	repo := repository.NewAnnouncementRepository(s.db)
	now := time.Now().UTC()

	announcements := []models.Announcement{
		{Title: "Practice moved", Body: "Thursday practice starts at 5pm on the turf field.", Audience: models.AudienceAll, CreatedAt: now.Add(-48 * time.Hour)},
		{Title: "Film session", Body: "Offense meets in room 4 after practice.", Audience: models.AudiencePlayers, CreatedAt: now.Add(-24 * time.Hour)},
		{Title: "Volunteer sign-up", Body: "We need two drivers for the away game.", Audience: models.AudienceParents, CreatedAt: now.Add(-12 * time.Hour)},
		{Title: "Depth chart draft", Body: "Review before Monday's staff meeting.", Audience: models.AudienceStaff, CreatedAt: now.Add(-2 * time.Hour)},
	}
	for i := range announcements {
		announcements[i].TeamID = teamID
		announcements[i].AuthorID = authorID
		if err := repo.Create(ctx, &announcements[i]); err != nil {
			return fmt.Errorf("create announcement: %w", err)
		}
	}

	s.log.Info("seeded announcements", zap.Int("count", len(announcements)))
	return nil
}

func (s *seeder) seedDocuments(ctx context.Context, teamID, uploaderID primitive.ObjectID) error {
	repo := repository.NewDocumentRepository(s.db)

	docs := []struct {
		title, fileName, contentType string
		size                         int
	}{
		{"Playbook 2024", "playbook.pdf", "application/pdf", 4096},
		{"Season schedule", "schedule.csv", "text/csv", 512},
	}

	for _, d := range docs {
		doc := &models.Document{
			ID:          primitive.NewObjectID(),
			TeamID:      teamID,
			UploadedBy:  uploaderID,
			Title:       d.title,
			ContentType: d.contentType,
			Status:      models.DocumentStatusPending,
			CreatedAt:   time.Now().UTC(),
		}
		doc.FileKey = storage.DocumentKey(teamID, doc.ID, d.fileName)

		placeholder := bytes.Repeat([]byte("braik"), d.size/5+1)[:d.size]
		if err := s.s3.PutObject(ctx, doc.FileKey, bytes.NewReader(placeholder), d.contentType); err != nil {
			s.log.Warn("failed to upload placeholder, leaving document pending", zap.String("key", doc.FileKey), zap.Error(err))
		} else {
			doc.Status = models.DocumentStatusUploaded
		}

		if err := repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
	}

	s.log.Info("seeded documents", zap.Int("count", len(docs)))
	return nil
}

func (s *seeder) seedConfig(ctx context.Context, adminID primitive.ObjectID, defaultCredits int64) error {
	repo := repository.NewSystemConfigRepository(s.db)

	version, err := repo.NextVersion(ctx, service.ConfigKeyAIDefaultCredits)
	if err != nil {
		return err
	}
	cfg := &models.SystemConfig{
		Key:       service.ConfigKeyAIDefaultCredits,
		Version:   version,
		Value:     defaultCredits,
		UpdatedBy: adminID,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Insert(ctx, cfg); err != nil {
		return fmt.Errorf("insert system config: %w", err)
	}

	s.log.Info("seeded system config", zap.String("key", cfg.Key), zap.Int64("version", version))
	return nil
}
