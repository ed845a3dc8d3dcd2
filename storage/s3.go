package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Blob-store prefixes. The schema only ever holds the object key; the
// bytes live in the bucket.
const (
	SocialIDDocumentsPrefix = "social_id_documents/"
	ApartmentImagesPrefix   = "apartment_images/"
	AmenityIconsPrefix      = "amenity_icons/"
	ApartmentPhotosPrefix   = "apartment_photos/"
)

var s3Client *s3.Client

func InitializeS3() {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("unable to load SDK config: %v", err)
		return
	}
	s3Client = s3.NewFromConfig(cfg)
}

// UploadBase64Object decodes a base64 payload (raw or data-URL) and stores
// it under the given prefix with a generated name. Returns the object key
// to persist on the owning row.
func UploadBase64Object(prefix, base64Src, contentType string) (string, error) {
	if s3Client == nil {
		return "", errors.New("s3 client not initialized")
	}
	if base64Src == "" {
		return "", errors.New("empty payload")
	}

	payload := base64Src
	if i := strings.Index(payload, ","); i != -1 {
		payload = payload[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}

	bucketName := os.Getenv("BUCKET_NAME")
	key := prefix + uuid.NewString()

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      &bucketName,
		Key:         &key,
		ContentType: aws.String(contentType),
		Body:        strings.NewReader(string(data)),
	})
	if err != nil {
		log.Printf("failed to put object %s: %v", key, err)
		return "", errors.New("failed to put object")
	}

	return key, nil
}

// DeleteObject removes a stored blob. Missing objects are not an error.
func DeleteObject(key string) error {
	if s3Client == nil || key == "" {
		return nil
	}
	bucketName := os.Getenv("BUCKET_NAME")
	_, err := s3Client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: &bucketName,
		Key:    &key,
	})
	return err
}
