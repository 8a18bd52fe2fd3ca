package main

import (
	"fmt"

	"github.com/Jarnpher553/gostore/component/client"
)

func main() {
	c, err := client.New(&client.Config{
		Key:       "feature_flags",
		Prefix:    "app.",
		Endpoints: []string{"127.0.0.1:9020"},
	})
	if err != nil {
		return
	}
	for v := range c.Watch() {
		fmt.Println(v)
	}
}
