// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"

	"github.com/SoftbearStudios/soar/cloud"
	"github.com/SoftbearStudios/soar/preview"
	"golang.org/x/net/netutil"
)

func main() {
	var (
		port           int
		maxConnections int
		maxCells       int
		workers        int
		config         cloud.Config
	)

	flag.IntVar(&port, "port", 8192, "http service port")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.IntVar(&maxCells, "max-cells", preview.DefaultMaxCells, "maximum cells per recipe")
	flag.IntVar(&workers, "workers", 0, "maximum concurrent builds (default number of CPUs)")
	flag.StringVar(&config.Bucket, "s3-bucket", "", "publish to this S3 bucket")
	flag.StringVar(&config.Region, "region", "us-east-1", "AWS region")
	flag.StringVar(&config.Stage, "stage", "dev", "deployment stage")
	flag.Parse()

	var c *cloud.Cloud
	if config.Bucket != "" {
		var err error
		c, err = cloud.New(config)
		if err != nil {
			// Cloud is not required for previews, just log an error
			log.Printf("Cloud error: %v\n", err)
		}
	}

	server := preview.NewServer(preview.Options{
		Cloud:    c,
		MaxCells: maxCells,
		Workers:  workers,
	})

	http.HandleFunc("/", server.ServeIndex)
	http.HandleFunc("/ws", server.ServeSocket)

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Printf("%s preview server started on port %d\n", c, port)
	log.Fatal("ListenAndServe: ", http.Serve(l, nil))
}
