package e2e_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"freightqa/internal/entity"
	"freightqa/internal/fake"
	kafkat "freightqa/internal/transport/kafka"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type reportList struct {
	Reports []struct {
		ReportID   uuid.UUID     `json:"reportId"`
		Kind       entity.Kind   `json:"kind"`
		Source     entity.Source `json:"source"`
		SubjectKey string        `json:"subjectKey"`
		IsValid    bool          `json:"isValid"`
	} `json:"reports"`
}

type E2ETestSuite struct {
	suite.Suite

	kafkaWriter *kafka.Writer
	httpClient  *http.Client
	baseURL     string
	gen         *fake.Generator
}

func (s *E2ETestSuite) SetupSuite() {
	kafkaBrokers := getEnvOrDefault("KAFKA_BROKERS", "localhost:9092")
	hostport := net.JoinHostPort(
		getEnvOrDefault("APP_HOST", "localhost"),
		getEnvOrDefault("APP_PORT", "8080"),
	)
	s.baseURL = "http://" + hostport

	s.kafkaWriter = &kafka.Writer{
		Addr:                   kafka.TCP(kafkaBrokers),
		Topic:                  getEnvOrDefault("KAFKA_TOPIC", "freight-records"),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	s.httpClient = &http.Client{
		Timeout: 10 * time.Second,
	}
	s.gen = fake.New(0, time.Now)

	s.waitForApp()
}

func (s *E2ETestSuite) waitForApp() {
	const maxRetries = 30
	const retryDelay = 2 * time.Second

	for i := range maxRetries {
		resp, err := s.do(http.MethodGet, "/ready", nil, nil)
		if err != nil {
			s.T().Logf("Readiness check failed (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			s.T().Log("App is ready")
			return
		}
		s.T().Logf("App readiness status %d (attempt %d/%d)", resp.StatusCode, i+1, maxRetries)
		time.Sleep(retryDelay)
	}
	s.T().Fatalf("App did not become ready after %d attempts", maxRetries)
}

func (s *E2ETestSuite) do(method, path string, body []byte, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(context.Background(), method, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return s.httpClient.Do(req)
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.kafkaWriter != nil {
		s.kafkaWriter.Close()
	}
}

func (s *E2ETestSuite) TestHTTPValidateAndFetch() {
	route := s.gen.Route()
	fake.Corrupt(route)

	body, err := json.Marshal(route)
	require.NoError(s.T(), err)

	reportID := uuid.New()
	header := http.Header{}
	header.Set("X-Report-ID", reportID.String())
	header.Set("Accept-Language", "ko")

	resp, err := s.do(http.MethodPost, "/api/v1/validate/routes", body, header)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	require.Equal(s.T(), reportID.String(), resp.Header.Get("X-Report-ID"))

	var result entity.ValidationResult
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&result))
	require.False(s.T(), result.IsValid)

	stored, err := s.do(http.MethodGet, "/api/v1/reports/"+reportID.String(), nil, nil)
	require.NoError(s.T(), err)
	defer stored.Body.Close()

	require.Equal(s.T(), http.StatusOK, stored.StatusCode)

	var report entity.Report
	require.NoError(s.T(), json.NewDecoder(stored.Body).Decode(&report))
	require.Equal(s.T(), reportID, report.ID)
	require.Equal(s.T(), entity.SourceHTTP, report.Source)
	require.Equal(s.T(), result.Violations[0].Message, report.Result.Violations[0].Message)
}

func (s *E2ETestSuite) TestKafkaRecordFlow() {
	shipper := s.gen.Shipper()
	fake.Corrupt(shipper)

	value, err := kafkat.EncodeEnvelope(entity.KindShipper, shipper)
	require.NoError(s.T(), err)

	err = s.kafkaWriter.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(shipper.SubjectKey()),
			Value: value,
		},
	)
	require.NoError(s.T(), err, "Failed to write message to Kafka")

	require.Eventually(s.T(), func() bool {
		resp, err := s.do(http.MethodGet, "/api/v1/reports?kind=shipper&valid=false&limit=500", nil, nil)
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil || resp.StatusCode != http.StatusOK {
			return false
		}

		var list reportList
		if err = json.Unmarshal(raw, &list); err != nil {
			return false
		}
		for _, r := range list.Reports {
			if r.Source == entity.SourceKafka && r.SubjectKey == shipper.SubjectKey() && !r.IsValid {
				return true
			}
		}
		return false
	}, 30*time.Second, time.Second, fmt.Sprintf("no kafka report for %s", shipper.SubjectKey()))
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func TestE2E(t *testing.T) {
	if os.Getenv("E2E_TEST") == "" {
		t.Skip("Skipping E2E test; set E2E_TEST to run.")
	}
	suite.Run(t, new(E2ETestSuite))
}
