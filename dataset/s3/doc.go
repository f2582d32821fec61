// Package s3 downloads benchmark datasets from Amazon S3 into a local
// cache directory, from which they can be loaded with the dataset package.
package s3
