// Package minio downloads benchmark datasets from MinIO or any other
// S3-compatible object store into a local cache directory.
package minio
