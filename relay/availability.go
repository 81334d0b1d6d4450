package relay

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	AVAILABILITY_TTL = time.Second * 30
)

type MerkleRootsResponse struct {
	Count uint64 `json:"count"`
}

// IndexerAPI queries the external indexed log tracking published merkle
// roots. Read-only; owned by the relayer pipeline, not this core.
type IndexerAPI struct {
	url string
}

func NewIndexerAPI(url string) *IndexerAPI {
	return &IndexerAPI{
		url: url,
	}
}

// MerkleRootCount returns how many checkpoint roots covering the given slot
// are already published.
func (a *IndexerAPI) MerkleRootCount(slot uint64) (uint64, error) {
	url := fmt.Sprintf("%s/api/merkle-roots?slot=%d", a.url, slot)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accepts", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP request failed with status code %d", resp.StatusCode)
	}

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	var rootsResponse MerkleRootsResponse
	err = json.Unmarshal(response, &rootsResponse)
	if err != nil {
		return 0, err
	}

	return rootsResponse.Count, nil
}

type RootCounter interface {
	MerkleRootCount(slot uint64) (uint64, error)
}

// Checker answers whether a manual relay is currently possible for a block or
// slot. It only drives the choice between the paid and the manual claim path;
// a stale reading delays a user action but never causes an incorrect
// execution, so results are cached with a short TTL.
type Checker struct {
	counter RootCounter
	cache   *ttlcache.Cache[uint64, bool]
}

func NewChecker(counter RootCounter) *Checker {
	cache := ttlcache.New(
		ttlcache.WithTTL[uint64, bool](AVAILABILITY_TTL),
	)
	go cache.Start()

	return &Checker{
		counter: counter,
		cache:   cache,
	}
}

// IsAvailable reports whether a checkpoint covering the slot is published.
func (c *Checker) IsAvailable(slot uint64) (bool, error) {
	cached := c.cache.Get(slot)
	if cached != nil {
		return cached.Value(), nil
	}

	count, err := c.counter.MerkleRootCount(slot)
	if err != nil {
		return false, err
	}

	available := count > 0
	c.cache.Set(slot, available, ttlcache.DefaultTTL)
	return available, nil
}

func (c *Checker) Stop() {
	c.cache.Stop()
}
