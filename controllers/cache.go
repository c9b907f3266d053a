package controllers

import (
	"context"
	"log"

	"toko-pos/models"
)

// invalidateStatsCache drops every cached dashboard and report response.
// Stats change on checkout and on any product write.
func invalidateStatsCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	for _, prefix := range []string{"dashboard_*", "reports_*"} {
		iter := models.RedisClient.Scan(ctx, 0, prefix, 0).Iterator()
		for iter.Next(ctx) {
			models.RedisClient.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			log.Printf("Cache invalidation scan failed for %s: %v", prefix, err)
		}
	}
}
