package main

import (
	"fmt"
	"time"

	"github.com/influxdata/influxdb/client/v2"
)

type matchStat struct {
	Pattern string
	Matches int
	Took    time.Duration
}

// publishStatsToInfluxDB drains the stats channel into an InfluxDB
// measurement, one point per /match request. Write failures are
// printed and dropped, stats must never take the API down.
func publishStatsToInfluxDB(addr string, stats <-chan matchStat) {
	var (
		influxDBName        = "unifyv1"
		influxHTTPClient, _ = client.NewHTTPClient(client.HTTPConfig{
			Addr: addr,
		})
	)
	res, err := influxHTTPClient.Query(client.NewQuery("CREATE DATABASE "+influxDBName, "", ""))
	if err != nil {
		fmt.Println("err creating database", err)
	}
	if res != nil && res.Error() != nil {
		fmt.Println("err creating database", res.Error())
	}
	for stat := range stats {
		bp, _ := client.NewBatchPoints(client.BatchPointsConfig{
			Database:  influxDBName,
			Precision: "ns",
		})
		pt, err := client.NewPoint(
			"pattern_match",
			map[string]string{},
			map[string]interface{}{
				"pattern": stat.Pattern,
				"matches": stat.Matches,
				"took_ns": stat.Took.Nanoseconds(),
			},
			time.Now(),
		)
		if err != nil {
			fmt.Println("err", err)
			continue
		}
		bp.AddPoint(pt)
		if err := influxHTTPClient.Write(bp); err != nil {
			fmt.Println("err", err)
		}
	}
}
