package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "stok/api/pb"
)

const dialProbeTimeout = 2 * time.Second

func main() {
	// 1. CLI Parameter Parsing
	serverAddr := flag.String("server", "127.0.0.1:50051", "Address of the exchange server")
	action := flag.String("action", "list", "Action to perform: ['create-account', 'create-security', 'bid', 'ask', 'list', 'lowest-bid', 'highest-ask', 'market-cap', 'watch']")

	// Order / query parameters
	account := flag.String("account", "", "Account ID (UUID) placing the order")
	security := flag.String("security", "", "Security ID (UUID) the action refers to")
	price := flag.Float64("price", 10.0, "Order price, or founding price for create-security")
	shares := flag.Uint64("shares", 100, "Founding shares for create-security")

	flag.Parse()

	ctx := context.Background()

	client, err := connect(ctx, *serverAddr)
	if err != nil {
		log.Fatalf("Failed to connect to server at %s: %v", *serverAddr, err)
	}
	fmt.Printf("Connected to %s\n", *serverAddr)

	switch *action {
	case "create-account":
		acc, err := client.CreateAccount(ctx, &pb.CreateAccReq{})
		exitOn(err)
		fmt.Printf("-> Account created: %s\n", acc.GetId().GetValue())

	case "create-security":
		resp, err := client.CreateSecurity(ctx, &pb.CreateSecReq{
			FoundingShares: *shares,
			FoundingPrice:  *price,
		})
		exitOn(err)
		fmt.Printf("-> Security created: %s (owner account %s)\n",
			resp.GetSecurity().GetId().GetValue(),
			resp.GetOwnerAcct().GetId().GetValue())

	case "bid":
		resp, err := client.PlaceBid(ctx, &pb.Bid{
			Sec:   secID(*security),
			Acc:   accID(*account),
			Price: *price,
		})
		exitOn(err)
		fmt.Printf("-> Bid placed at %.2f\n", resp.GetPrice())

	case "ask":
		resp, err := client.PlaceAsk(ctx, &pb.Ask{
			Sec:   secID(*security),
			Acc:   accID(*account),
			Price: *price,
		})
		exitOn(err)
		fmt.Printf("-> Ask placed at %.2f\n", resp.GetPrice())

	case "list":
		resp, err := client.ListSecurities(ctx, &pb.ListSecsReq{})
		exitOn(err)
		for _, sec := range resp.GetList() {
			fmt.Println(sec.GetId().GetValue())
		}

	case "lowest-bid":
		resp, err := client.GetLowestBid(ctx, &pb.LowestBidReq{Sec: secID(*security)})
		exitOn(err)
		if resp.Price == nil {
			fmt.Println("-> No bids placed")
		} else {
			fmt.Printf("-> Lowest bid: %.2f\n", resp.GetPrice())
		}

	case "highest-ask":
		resp, err := client.GetHighestAsk(ctx, &pb.HighestAskReq{Sec: secID(*security)})
		exitOn(err)
		if resp.Price == nil {
			fmt.Println("-> No asks placed")
		} else {
			fmt.Printf("-> Highest ask: %.2f\n", resp.GetPrice())
		}

	case "market-cap":
		resp, err := client.GetMarketCap(ctx, &pb.MarketCapReq{Sec: secID(*security)})
		exitOn(err)
		fmt.Printf("-> Market cap: %.2f\n", resp.GetMarketcap())

	case "watch":
		stream, err := client.RegisterSecValue(ctx, &pb.SecValueReq{Sec: secID(*security)})
		exitOn(err)
		fmt.Println("Watching security value... (Press Ctrl+C to exit)")
		for {
			value, err := stream.Recv()
			if err == io.EOF {
				return
			}
			exitOn(err)
			fmt.Printf("[%s] %s = %.2f\n",
				time.Now().Format(time.TimeOnly),
				value.GetSec().GetId().GetValue(),
				value.GetValue())
		}

	default:
		log.Fatalf("Unknown action: %s", *action)
	}
}

// connect dials with exponential backoff, probing the connection with a
// cheap RPC so a server that is still starting up gets retried.
func connect(ctx context.Context, addr string) (pb.MarketClient, error) {
	var client pb.MarketClient
	dial := func() error {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return err
		}
		probeCtx, cancel := context.WithTimeout(ctx, dialProbeTimeout)
		defer cancel()
		c := pb.NewMarketClient(conn)
		if _, err := c.ListSecurities(probeCtx, &pb.ListSecsReq{}); err != nil {
			conn.Close()
			return err
		}
		client = c
		return nil
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(dial, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return client, nil
}

func secID(value string) *pb.SecId {
	if value == "" {
		log.Fatal("Error: -security is required for this action")
	}
	return &pb.SecId{Id: &pb.Uuid{Value: value}}
}

func accID(value string) *pb.AccId {
	if value == "" {
		log.Fatal("Error: -account is required for this action")
	}
	return &pb.AccId{Id: &pb.Uuid{Value: value}}
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "RPC failed: %v\n", err)
		os.Exit(1)
	}
}
