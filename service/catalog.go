package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/emzola/libraryportal/clients"
	"github.com/emzola/libraryportal/data"
	"github.com/emzola/libraryportal/repository"
	jsoniter "github.com/json-iterator/go"
)

type catalog interface {
	SnapshotCatalog() (*data.CatalogSnapshot, error)
	ExportCatalog() (string, error)
}

// SnapshotCatalog service reads every book and borrower inside one transaction.
func (s *service) SnapshotCatalog() (*data.CatalogSnapshot, error) {
	snapshot := &data.CatalogSnapshot{TakenAt: time.Now().UTC()}
	err := s.repo.WithTx(func(repo repository.Repository) error {
		var err error
		snapshot.Books, err = repo.GetAllBooks()
		if err != nil {
			return err
		}
		snapshot.Borrowers, err = repo.GetAllBorrowers()
		return err
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ExportCatalog service uploads a JSON catalog snapshot to the configured
// bucket and returns the object key.
func (s *service) ExportCatalog() (string, error) {
	if !s.config.S3Enabled() {
		return "", ErrStorageDisabled
	}
	snapshot, err := s.SnapshotCatalog()
	if err != nil {
		return "", err
	}
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	client, err := clients.NewS3Client(s.config)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("exports/catalog-%d.json", snapshot.TakenAt.Unix())
	err = s.uploadToS3(client, key, body)
	if err != nil {
		return "", err
	}
	s.logger.PrintInfo("catalog exported", map[string]string{
		"bucket":    s.config.S3.Bucket,
		"key":       key,
		"books":     strconv.Itoa(len(snapshot.Books)),
		"borrowers": strconv.Itoa(len(snapshot.Borrowers)),
	})
	return key, nil
}

// uploadToS3 saves a JSON document to the configured aws bucket.
func (s *service) uploadToS3(client *s3.Client, key string, body []byte) error {
	uploader := manager.NewUploader(client)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.config.S3.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: int64(len(body)),
		ContentType:   aws.String("application/json"),
	})
	return err
}
