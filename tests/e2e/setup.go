//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"tutor-scheduling/cmd/bootstrap"
	"tutor-scheduling/cmd/bootstrap/components"
	"tutor-scheduling/internal/infra/db"
	"tutor-scheduling/internal/pkg/config"
	"tutor-scheduling/internal/pkg/metrics"
	"tutor-scheduling/migrations"
	"tutor-scheduling/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
	redisPort  = "6379/tcp"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (ci ContainerInfo) Addr() string {
	return ci.Host + ":" + ci.Port.Port()
}

// sharedContainer starts one container per test process and hands out its address.
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	info      ContainerInfo
	err       error
}

func (sc *sharedContainer) get(t *testing.T, req testcontainers.ContainerRequest, port string) ContainerInfo {
	t.Helper()

	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		sc.container, sc.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if sc.err != nil {
			return
		}
		sc.info, sc.err = hostPort(ctx, sc.container, port)
	})
	require.NoError(t, sc.err, "%s コンテナの起動に失敗", req.Image)
	return sc.info
}

var (
	postgresContainer sharedContainer
	redisContainer    sharedContainer
)

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{pgPort},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// データはRAM上に置き、耐久性の設定は切る
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "full_page_writes=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(ContainerInfo{Host: host, Port: port})
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{redisPort},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}

func adminDSN(pg ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())
}

// ------------------------------------------------------------
// テスト用データベース
// ------------------------------------------------------------

// createDatabase makes a database private to this test process and drops it on cleanup.
func createDatabase(t *testing.T, pg ContainerInfo) config.DBConfig {
	t.Helper()

	name := "tutor_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	exec := func(ctx context.Context, sql string) error {
		admin, err := pgxpool.New(ctx, adminDSN(pg))
		if err != nil {
			return err
		}
		defer admin.Close()
		_, err = admin.Exec(ctx, sql)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// 並列プロセスが同時に CREATE DATABASE するとテンプレートのロックで失敗することがある
	var err error
	for attempt := range 5 {
		if err = exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行します", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 300 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 40,
		MinConns: 1,
	}
}

func migrate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	m, err := db.NewMigrator(pool, migrations.FS, ".")
	require.NoError(t, err, "マイグレーションの準備に失敗")
	defer m.Close()

	require.NoError(t, m.Up(ctx), "マイグレーションの適用に失敗")
}

// ------------------------------------------------------------
// アプリケーション
// ------------------------------------------------------------

type Environment struct {
	Pool    *pgxpool.Pool
	Router  *gin.Engine
	Config  config.Config
	Metrics *metrics.Metrics
}

// newEnvironment wires the production modules against the containers.
// Window reads go through the Redis cache like they do in production.
func newEnvironment(t *testing.T) Environment {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pg := postgresContainer.get(t, postgresRequest(), pgPort)
	rd := redisContainer.get(t, redisRequest(), redisPort)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, pg)
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = rd.Addr()

	var env Environment
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.DBModule,
		bootstrap.CacheModule,
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.Pool, &env.Router, &env.Metrics),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	migrate(t, env.Pool)
	env.Config = cfg
	return env
}

func hostPort(ctx context.Context, c testcontainers.Container, port string) (ContainerInfo, error) {
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mapped}, nil
}

// ------------------------------------------------------------
// 共通スイート
// ------------------------------------------------------------

type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Metrics *metrics.Metrics
}

func (s *SharedSuite) SetupSuite() {
	env := newEnvironment(s.T())
	s.Router = env.Router
	s.DB = env.Pool
	s.Config = env.Config
	s.Metrics = env.Metrics
}

// SetupSubTest empties the tables. Cached windows may outlive it, but every
// subtest creates windows with fresh ids.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "テーブルの初期化に失敗")
}
