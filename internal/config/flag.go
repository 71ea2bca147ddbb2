package config

import (
	"flag"
)

const (
	defaultDBDNS       = ""
	defaultS3Bucket    = "order-management-invoices"
	defaultSNSTopicARN = "arn:aws:sns:us-east-1:123456789:order-notifications"
)

type Flags struct {
	address string

	dbDNS       string
	s3Bucket    string
	snsTopicARN string
}

func (flags *Flags) Init() {
	flag.StringVar(&flags.address, "a", ":8080", "Address and port to run server")

	flag.StringVar(&flags.dbDNS, "d", defaultDBDNS, "db dns")
	flag.StringVar(&flags.s3Bucket, "b", defaultS3Bucket, "mock S3 bucket for invoice files")
	flag.StringVar(&flags.snsTopicARN, "t", defaultSNSTopicARN, "mock SNS topic for order notifications")

	flag.Parse()
}
