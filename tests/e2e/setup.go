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

	"staybook/cmd/bootstrap"
	"staybook/cmd/bootstrap/components"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/config"
	"staybook/tests/common/dbtest"

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
	pgPort     = nat.Port("5432/tcp")
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
)

// postgresEnv は共有コンテナへの接続先を表す
type postgresEnv struct {
	host string
	port nat.Port
}

func (e postgresEnv) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, e.host, e.port.Port(), database)
}

func (e postgresEnv) dbConfig(database string) config.DBConfig {
	return config.DBConfig{
		Host:     e.host,
		Port:     e.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   database,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// コンテナはテストバイナリ内で一度だけ起動し、再利用する
func sharedPostgres(t *testing.T) postgresEnv {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return postgresEnv{host: host, port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
		pgContainer = container
	})
	require.NotNil(t, pgContainer, "PostgreSQLコンテナが起動していません")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "コンテナホストの取得に失敗")
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err, "コンテナポートの取得に失敗")

	return postgresEnv{host: host, port: port}
}

// プロセス毎に専用DBを作り、マイグレーションと参照データを投入する
func (e postgresEnv) freshDatabase(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	name := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	e.adminExec(ctx, t, "CREATE DATABASE "+name, 5)
	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		e.adminExec(dropCtx, t, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)", 1)
	})

	cfg := e.dbConfig(name)
	require.NoError(t, db.Migrate(ctx, cfg.BuildDSN(), slog.Default()), "データベースマイグレーションに失敗")

	pool, _, err := db.Connect(ctx, cfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")
	return pool, cfg
}

// adminExec は postgres DB に対して文を実行する。作成直後のコンテナは
// 接続を拒否することがあるので attempts 回まで待ちながら再試行する
func (e postgresEnv) adminExec(ctx context.Context, t *testing.T, stmt string, attempts int) {
	t.Helper()

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			time.Sleep(min(time.Duration(attempt+1)*500*time.Millisecond, 3*time.Second))
		}
		lastErr = func() error {
			pool, err := pgxpool.New(ctx, e.dsn("postgres"))
			if err != nil {
				return err
			}
			defer pool.Close()
			_, err = pool.Exec(ctx, stmt)
			return err
		}()
		if lastErr == nil {
			return
		}
		slog.Warn("管理用SQLを再試行中", "attempt", attempt+1, "error", lastErr.Error())
	}
	if strings.HasPrefix(stmt, "DROP") {
		slog.Warn("テストデータベースの削除に失敗しました", "error", lastErr.Error())
		return
	}
	require.NoError(t, lastErr, "管理用SQLの実行に失敗: %s", stmt)
}

// 本番と同じモジュール構成で、DBと設定だけ差し替えて起動する
func startApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()

	var (
		router *gin.Engine
		cfg    config.Config
	)

	app := fx.New(
		fx.Module("testdb", fx.Provide(func() *pgxpool.Pool { return pool })),
		fx.Module("testconfig", fx.Provide(func() config.Config {
			c := config.NewTestConfig()
			c.DB = dbConfig
			return c
		})),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗")
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return router, cfg
}

// SharedSuite は e2e スイートが埋め込む共通の土台
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	env := sharedPostgres(t)
	pool, dbConfig := env.freshDatabase(t)
	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbConfig)

	slog.Info("E2E環境の準備が完了しました", "postgres_host", env.host, "postgres_port", env.port.Port())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
