package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"

	"github.com/prepmate/interviewd/internal/analysis"
	"github.com/prepmate/interviewd/internal/database"
	"github.com/prepmate/interviewd/internal/document"
	"github.com/prepmate/interviewd/internal/gemini"
	"github.com/prepmate/interviewd/internal/interview"
)

const analysisWorkers = 3

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		log.Fatal("empty DB_URL in environment")
	}

	geminiApiKey := os.Getenv("GEMINI_API_KEY")
	if geminiApiKey == "" {
		log.Fatal("empty GEMINI_API_KEY in environment")
	}

	db, err := sql.Open("postgres", dbUrl)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}
	dbqueries := database.New(db)

	client, err := gemini.NewClient(ctx, geminiApiKey)
	if err != nil {
		log.Fatal("error creating gemini client. err: ", err)
	}
	client.WithModels(os.Getenv("GENERATION_MODEL"), os.Getenv("EMBEDDING_MODEL"))

	// Status updates are optional; without a broker the pipeline just
	// logs.
	var notifier analysis.Notifier
	if rabbitmqUrl := os.Getenv("RABBITMQ_URL"); rabbitmqUrl != "" {
		conn, err := amqp.Dial(rabbitmqUrl)
		if err != nil {
			log.Fatalf("error connecting to RabbitMQ. err: %v", err)
		}
		notifier = analysis.NewAMQPNotifier(conn)
	}

	// R2 is optional too; without it resumes must be uploaded inline.
	var r2Client *s3.Client
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket != "" {
		r2Config := document.R2Config{
			AccountID: os.Getenv("R2_ACCOUNT_ID"),
			Bucket:    r2Bucket,
			AccessKey: os.Getenv("R2_ACCESS_KEY"),
			SecretKey: os.Getenv("R2_SECRET_KEY"),
		}
		if r2Config.AccountID == "" || r2Config.AccessKey == "" || r2Config.SecretKey == "" {
			log.Fatal("R2_BUCKET set but R2_ACCOUNT_ID/R2_ACCESS_KEY/R2_SECRET_KEY incomplete")
		}
		awsConfig, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
			awsconfig.WithRegion("auto"),
		)
		if err != nil {
			log.Fatal("error creating aws config. err: ", err)
		}
		r2Client = document.NewR2Client(awsConfig, r2Config)
	}

	pool := analysis.NewPool(analysisWorkers, analysis.NewPipeline(dbqueries, client), notifier)

	api := &apiConfig{
		service:  interview.NewService(dbqueries, client, client),
		reports:  dbqueries,
		pool:     pool,
		r2Client: r2Client,
		r2Bucket: r2Bucket,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/session/create", api.handleCreateSession)
	mux.HandleFunc("GET /api/session/{sessionId}", api.handleGetSession)
	mux.HandleFunc("POST /api/interview/ask", api.handleAsk)
	mux.HandleFunc("POST /api/interview/analyze", api.handleAnalyze)
	mux.HandleFunc("GET /api/report/{sessionId}", api.handleGetReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("interviewd listening on :%s with %d analysis workers", port, analysisWorkers)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", port), mux))
}
