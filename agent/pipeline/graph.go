package pipeline

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/siamtel/assistant/agent/contract"
	nodex "github.com/siamtel/assistant/agent/nodes"
)

func (p *Pipeline) compileRoutingGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode(nodex.NodePrepareRequest,
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.PrepareRequest(in, p.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodePrepareRequest, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeLoadHistory,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.LoadHistory(ctx, in, p.history)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeLoadHistory, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeClassify,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Classify(ctx, in, p.classifier)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeClassify, err)
	}

	handlerNodes := map[string]contractx.HandlerID{
		nodex.NodeBilling:   contractx.HandlerBilling,
		nodex.NodeNetwork:   contractx.HandlerNetwork,
		nodex.NodeService:   contractx.HandlerService,
		nodex.NodeKnowledge: contractx.HandlerKnowledge,
		nodex.NodeFallback:  contractx.HandlerFallback,
	}
	for node, id := range handlerNodes {
		if err := graph.AddLambdaNode(node,
			compose.InvokableLambda(nodex.NewHandlerNode(id, p.registry)),
		); err != nil {
			return nil, fmt.Errorf("add node %s: %w", node, err)
		}
	}

	if err := graph.AddLambdaNode(nodex.NodeFormulate,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Formulate(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeFormulate, err)
	}

	if err := graph.AddLambdaNode(nodex.NodeAppendHistory,
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			in, err := nodex.AppendHistory(ctx, in, p.history)
			if err != nil {
				return nodex.GraphOutput{}, err
			}
			return nodex.Output(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node %s: %w", nodex.NodeAppendHistory, err)
	}

	edges := [][2]string{
		{compose.START, nodex.NodePrepareRequest},
		{nodex.NodePrepareRequest, nodex.NodeLoadHistory},
		{nodex.NodeLoadHistory, nodex.NodeClassify},
		{nodex.NodeBilling, nodex.NodeFormulate},
		{nodex.NodeNetwork, nodex.NodeFormulate},
		{nodex.NodeService, nodex.NodeFormulate},
		{nodex.NodeKnowledge, nodex.NodeFormulate},
		{nodex.NodeFallback, nodex.NodeFormulate},
		{nodex.NodeFormulate, nodex.NodeAppendHistory},
		{nodex.NodeAppendHistory, compose.END},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	dispatchBranch := compose.NewGraphBranch(nodex.Dispatch, nodex.HandlerNodes())
	if err := graph.AddBranch(nodex.NodeClassify, dispatchBranch); err != nil {
		return nil, fmt.Errorf("add dispatch branch: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("pipeline.route_query"))
	if err != nil {
		return nil, fmt.Errorf("compile routing graph: %w", err)
	}
	return runner, nil
}
