// Package s3 превращает расположения треков вида s3://bucket/key в подписанные URL
package s3

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// DefaultExpiry - время жизни подписанной ссылки по умолчанию
const DefaultExpiry = 15 * time.Minute

// ErrInvalidLocation возвращается для расположений, не похожих на s3://bucket/key
var ErrInvalidLocation = errors.New("неверное расположение в S3")

// Config содержит настройки для S3
type Config struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	Expiry    time.Duration
}

// Resolver подписывает запросы на чтение объектов из S3
type Resolver struct {
	s3Client *s3.S3
	expiry   time.Duration
}

// NewResolver создает новый резолвер S3
func NewResolver(config *Config) (*Resolver, error) {
	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	expiry := config.Expiry
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	return &Resolver{
		s3Client: s3.New(sess),
		expiry:   expiry,
	}, nil
}

// Resolve возвращает подписанный URL для расположения s3://bucket/key
func (r *Resolver) Resolve(location string) (string, error) {
	bucket, key, err := ParseLocation(location)
	if err != nil {
		return "", err
	}

	req, _ := r.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	signed, err := req.Presign(r.expiry)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи ссылки на %s: %w", location, err)
	}
	return signed, nil
}

// ParseLocation разбирает расположение s3://bucket/key
func ParseLocation(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("%w: ожидалась схема s3, получено %q", ErrInvalidLocation, location)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}
	return u.Host, key, nil
}
