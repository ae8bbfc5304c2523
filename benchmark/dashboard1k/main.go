package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxClients int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxClients; i++ {
		i := i
		wg.Add(1)
		go func() {
			registerDevice(i)
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxClients, usedTime.Seconds(), float64(maxClients)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxClients; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v clients: used time=%v seconds, throughput=%v action/second\n",
		maxClients, usedTime.Seconds(), float64(maxClients*4)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func registerDevice(index int) {
	deviceTypes := []string{"solar", "wind", "battery", "other"}

	payload := map[string]any{
		"name":      fmt.Sprintf("Bench Unit %v", index),
		"type":      deviceTypes[rnd.Intn(len(deviceTypes))],
		"maxOutput": rndFloat64(1.0, 10.0, 2),
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("unexpected status: %v", resp.StatusCode))
	}
}

func doAction(index int) {
	actions := []func(){
		genGetAction("/api/devices"),
		genGetAction("/api/alerts/counts"),
		genGetAction("/api/optimization/recommendations"),
		genGetAction("/api/analytics/summary?period=week"),
	}
	actionNames := []string{
		"GetDevices",
		"GetAlertCounts",
		"GetRecommendations",
		"GetAnalyticsSummary",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for i, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for client %v", actionNames[i], index)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genGetAction(path string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s%s", httpHostPort, path))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
