package deps

import (
	"context"
	"edumentor/internal/config"
	"edumentor/internal/core/domain/assistant"
	dl "edumentor/internal/core/domain/logging"
	drl "edumentor/internal/core/domain/rate_limiter"
	"edumentor/internal/core/domain/reminder"
	domainstudyplan "edumentor/internal/core/domain/studyplan"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/db/csvfile"
	dbreminder "edumentor/internal/db/reminder"
	dbstudyplan "edumentor/internal/db/studyplan"
	dbuser "edumentor/internal/db/user"
	assistantclient "edumentor/internal/implementations/assistant"
	"edumentor/internal/implementations/email"
	"edumentor/internal/implementations/logging"
	passwordhasher "edumentor/internal/implementations/password_hasher"
	randomstringgenerator "edumentor/internal/implementations/random_string_generator"
	ratelimiter "edumentor/internal/implementations/rate_limiter"
	reminderevents "edumentor/internal/implementations/reminder_events"
	"edumentor/internal/rabbitmq"
	deliveryattempts "edumentor/internal/rabbitmq/publishers/delivery_attempts"
	"net/url"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	UserRepository    user.UserRepository
	SessionRepository user.SessionRepository
	EntryRepository   reminder.EntryRepository
	PlanRepository    domainstudyplan.PlanRepository

	RateLimiter drl.RateLimiter

	PasswordHasher        user.PasswordHasher
	SessionTokenGenerator user.SessionTokenGenerator

	NotificationGateway reminder.NotificationGateway
	AttemptPublishers   []reminder.AttemptPublisher
	DeliveryPolicy      reminder.DeliveryPolicy

	TextGenerator assistant.TextGenerator
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.UserRepository = deps.initUserRepository()
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.EntryRepository = dbreminder.NewPgxEntryRepository(deps.DB)
	deps.PlanRepository = dbstudyplan.NewPgxPlanRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.SessionTokenGenerator = randomstringgenerator.NewGenerator()

	deps.NotificationGateway = email.NewSesNotificationGateway(deps.AwsConfig, deps.Config.AwsEmailSender)
	deps.DeliveryPolicy = deps.initDeliveryPolicy()

	closeAttemptPublisher := deps.initAttemptPublishers()

	deps.TextGenerator = deps.initTextGenerator()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeAttemptPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

// initUserRepository selects the credential store backend. The CSV file
// backend only replaces the user repository, sessions stay in PostgreSQL.
func (deps *Deps) initUserRepository() user.UserRepository {
	if deps.Config.CredentialsFile != "" {
		deps.Logger.Info(
			context.Background(),
			"Using CSV file credential store.",
			dl.Entry("path", deps.Config.CredentialsFile),
		)
		return csvfile.NewUserRepository(deps.Config.CredentialsFile)
	}
	return dbuser.NewPgxUserRepository(deps.DB)
}

func (deps *Deps) initDeliveryPolicy() reminder.DeliveryPolicy {
	policy, err := reminder.ParseDeliveryPolicy(deps.Config.DeliveryPolicy)
	if err != nil {
		panic(err)
	}
	return policy
}

func (deps *Deps) initAttemptPublishers() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	_, err = rabbitmqChannel.QueueDeclare(deps.Config.AttemptsQueue, true, false, false, false, nil)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	deps.AttemptPublishers = []reminder.AttemptPublisher{
		deliveryattempts.NewRabbitMQ(
			deps.Logger,
			rabbitmqChannel,
			deps.Config.AttemptsExchange,
			deps.Config.AttemptsQueue,
		),
		reminderevents.NewSsePublisher(deps.SseServer),
	}

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down delivery attempt publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Delivery attempt publisher shut down.")
	}
}

func (deps *Deps) initTextGenerator() assistant.TextGenerator {
	baseURL, err := url.Parse(deps.Config.AssistantBaseURL)
	if err != nil {
		panic(err)
	}
	return assistantclient.New(
		*baseURL,
		deps.Config.AssistantModel,
		deps.Config.AssistantAPIKey,
		deps.Config.AssistantTimeout,
	)
}
