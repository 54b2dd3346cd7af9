//go:build ignore

// Ручная дымовая проверка работающего сервиса: создаёт парк, пишет
// обследование и запрашивает тренд и статистику.
//
//	go run scripts/smoke_api.go -addr http://localhost:8080
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base address of the running service")
	flag.Parse()

	base := *addr + "/api/v1"

	// Проверка доступности
	checkGet(base + "/health")

	// Парк с одним корпусом
	park := post(base+"/parks", map[string]any{
		"name":    fmt.Sprintf("Smoke Park %d", time.Now().Unix()),
		"address": "1 Smoke Test Lane",
		"tags":    []string{"smoke"},
	})
	parkID, _ := park["id"].(string)
	if parkID == "" {
		log.Fatalf("park id missing in response: %v", park)
	}
	fmt.Printf("created park %s\n", parkID)

	post(base+"/parks/"+parkID+"/buildings", map[string]any{
		"name": "Block A",
		"area": 12000,
	})

	// Запись обследования на сегодня
	survey := post(base+"/surveys", map[string]any{
		"park_id":        parkID,
		"date":           time.Now().Format("2006-01-02"),
		"occupancy_rate": 77.5,
		"rent_price":     4.1,
	})
	fmt.Printf("created survey %v\n", survey["id"])

	// Тренд и статистика должны отвечать без ошибок
	checkGet(base + "/trend?range=6M&metric=occupancy&scope=market")
	checkGet(base + "/stats")
	checkGet(base + "/stats/compliance")

	fmt.Println("smoke check passed")
}

func post(url string, payload map[string]any) map[string]any {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal payload: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		log.Fatalf("POST %s: status %d, body %s", url, resp.StatusCode, raw)
	}

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Fatalf("POST %s: decode response: %v", url, err)
	}
	return envelope.Data
}

func checkGet(url string) {
	resp, err := http.Get(url)
	if err != nil {
		log.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	fmt.Printf("GET %s -> %d\n", url, resp.StatusCode)
}
