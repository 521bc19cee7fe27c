// Package s3 implements blobstore.Store backed by Amazon S3.
//
// Reads use ranged GetObject requests so large blobs can be read
// partially. Writes go through the upload manager, which switches to
// multipart uploads for large payloads.
package s3
