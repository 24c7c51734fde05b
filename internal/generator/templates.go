// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

// Document templates. Each template is a self-contained Markdown document:
// heading hierarchy, prose, and fenced command blocks tagged bash or yaml.
// The external document runner parses the fences and executes them, so
// every fence must be balanced and tagged.

// fence delimits code blocks. Kept out of the raw strings because raw
// string literals cannot contain backticks.
const (
	fenceBash  = "```bash\n"
	fenceYAML  = "```yaml\n"
	fenceClose = "```\n"
)

const runnerHint = "Save this document as a .md file and hand it to your document runner to execute the steps in order.\n"

// =============================================================================
// TOPIC TEMPLATES
// =============================================================================

var deploymentTemplate = `# Deploy an Application to Kubernetes

> Request: {query}

## Prerequisites

Confirm that kubectl is pointed at the right cluster before deploying:

` + fenceBash + `kubectl cluster-info
kubectl config current-context
` + fenceClose + `
## Step 1: Create the Deployment

` + fenceBash + `kubectl create deployment my-app --image=nginx:latest --replicas=3
` + fenceClose + `
## Step 2: Expose the Deployment

` + fenceBash + `kubectl expose deployment my-app --port=80 --target-port=80 --type=ClusterIP
` + fenceClose + `
## Step 3: Verify the Rollout

` + fenceBash + `kubectl rollout status deployment/my-app
kubectl get deployments
kubectl get pods -l app=my-app
` + fenceClose + `
` + runnerHint

var serviceTemplate = `# Create a Kubernetes Service

> Request: {query}

## Prerequisites

The service below selects pods labeled app=my-app; make sure a workload
with that label exists:

` + fenceBash + `kubectl get pods -l app=my-app
` + fenceClose + `
## Step 1: Define the Service

` + fenceYAML + `apiVersion: v1
kind: Service
metadata:
  name: my-service
spec:
  selector:
    app: my-app
  ports:
    - protocol: TCP
      port: 80
      targetPort: 8080
  type: ClusterIP
` + fenceClose + `
## Step 2: Apply the Service

` + fenceBash + `kubectl apply -f service.yaml
` + fenceClose + `
## Step 3: Verify the Service

` + fenceBash + `kubectl get services
kubectl describe service my-service
` + fenceClose + `
` + runnerHint

var ingressTemplate = `# Set Up an Ingress Controller

> Request: {query}

## Prerequisites

Ingress resources need a running controller. Install the NGINX ingress
controller first:

` + fenceBash + `kubectl apply -f https://raw.githubusercontent.com/kubernetes/ingress-nginx/controller-v1.8.1/deploy/static/provider/cloud/deploy.yaml
` + fenceClose + `
## Step 1: Wait for the Controller

` + fenceBash + `kubectl wait --namespace ingress-nginx \
  --for=condition=ready pod \
  --selector=app.kubernetes.io/component=controller \
  --timeout=90s
` + fenceClose + `
## Step 2: Define the Ingress

` + fenceYAML + `apiVersion: networking.k8s.io/v1
kind: Ingress
metadata:
  name: my-ingress
  annotations:
    nginx.ingress.kubernetes.io/rewrite-target: /
spec:
  rules:
  - host: my-app.local
    http:
      paths:
      - path: /
        pathType: Prefix
        backend:
          service:
            name: my-service
            port:
              number: 80
` + fenceClose + `
## Step 3: Apply the Ingress

` + fenceBash + `kubectl apply -f ingress.yaml
kubectl get ingress my-ingress
` + fenceClose + `
` + runnerHint

var podTemplate = `# Work with Pods

> Request: {query}

## Prerequisites

Pods are usually managed by a Deployment; create one directly only for
debugging or one-off jobs.

## Step 1: Define a Pod

` + fenceYAML + `apiVersion: v1
kind: Pod
metadata:
  name: my-pod
  labels:
    app: my-app
spec:
  containers:
  - name: app
    image: nginx:latest
    ports:
    - containerPort: 80
` + fenceClose + `
## Step 2: Create the Pod

` + fenceBash + `kubectl apply -f pod.yaml
` + fenceClose + `
## Step 3: Inspect and Debug

` + fenceBash + `kubectl get pods
kubectl describe pod my-pod
kubectl logs my-pod
kubectl exec -it my-pod -- /bin/sh
` + fenceClose + `
` + runnerHint

var storageTemplate = `# Configure Persistent Storage

> Request: {query}

## Prerequisites

Check which storage classes your cluster offers; the claim below uses
the default class:

` + fenceBash + `kubectl get storageclass
` + fenceClose + `
## Step 1: Define a PersistentVolumeClaim

` + fenceYAML + `apiVersion: v1
kind: PersistentVolumeClaim
metadata:
  name: my-claim
spec:
  accessModes:
    - ReadWriteOnce
  resources:
    requests:
      storage: 1Gi
` + fenceClose + `
## Step 2: Apply and Verify the Claim

` + fenceBash + `kubectl apply -f pvc.yaml
kubectl get pvc my-claim
kubectl get pv
` + fenceClose + `
## Step 3: Mount the Volume in a Pod

` + fenceYAML + `apiVersion: v1
kind: Pod
metadata:
  name: storage-pod
spec:
  containers:
  - name: app
    image: nginx:latest
    volumeMounts:
    - mountPath: /data
      name: data
  volumes:
  - name: data
    persistentVolumeClaim:
      claimName: my-claim
` + fenceClose + `
A bound PersistentVolume is provisioned automatically when the claim is
applied on clusters with dynamic provisioning.

` + runnerHint

var monitoringTemplate = `# Set Up Monitoring and Logging

> Request: {query}

## Prerequisites

Resource metrics need the metrics-server addon:

` + fenceBash + `kubectl apply -f https://github.com/kubernetes-sigs/metrics-server/releases/latest/download/components.yaml
` + fenceClose + `
## Step 1: Check Resource Usage

` + fenceBash + `kubectl top nodes
kubectl top pods --all-namespaces
` + fenceClose + `
## Step 2: Tail Workload Logs

` + fenceBash + `kubectl logs -l app=my-app --tail=100 -f
` + fenceClose + `
## Step 3: Review Cluster Events

` + fenceBash + `kubectl get events --sort-by=.metadata.creationTimestamp
` + fenceClose + `
` + runnerHint

var namespaceTemplate = `# Organize Workloads with Namespaces

> Request: {query}

## Prerequisites

List the namespaces that already exist:

` + fenceBash + `kubectl get namespaces
` + fenceClose + `
## Step 1: Create a Namespace

` + fenceBash + `kubectl create namespace my-team
` + fenceClose + `
## Step 2: Target It by Default

` + fenceBash + `kubectl config set-context --current --namespace=my-team
` + fenceClose + `
## Step 3: Verify

` + fenceBash + `kubectl config view --minify | grep namespace:
` + fenceClose + `
` + runnerHint

// =============================================================================
// FALLBACK DOCUMENT
// =============================================================================

// fallbackDocument is returned for queries matching no topic rule. It is
// a fixed string, never interpolated, so repeated unmatched queries
// produce byte-identical output.
var fallbackDocument = `# Kubernetes Assistant

I can help you with common Kubernetes tasks:

- Deployments and rollouts
- Services and networking
- Ingress controllers
- Pods and containers
- Storage and volumes
- Monitoring and logging
- Namespaces

## Quick Start

Try asking a more specific question, for example:

- "How do I create a deployment?"
- "Help me set up a service"
- "I need to configure ingress"

Or use the quick actions (F1, F2, F3) for common tasks.

Every response is an executable document: save it as a .md file and hand
it to your document runner.
`

// =============================================================================
// DEFAULT RULES
// =============================================================================

// DefaultRules returns the built-in topic rules in match order. Order is
// part of the contract: earlier rules shadow later ones for queries that
// mention several topics.
func DefaultRules() []Rule {
	return []Rule{
		{
			Topic:    "deployment",
			Keywords: []string{"deployment", "deploy"},
			Template: deploymentTemplate,
		},
		{
			Topic:    "service",
			Keywords: []string{"service"},
			Template: serviceTemplate,
		},
		{
			Topic:    "ingress",
			Keywords: []string{"ingress"},
			Template: ingressTemplate,
		},
		{
			Topic:    "pod",
			Keywords: []string{"pod", "container"},
			Template: podTemplate,
		},
		{
			Topic:    "storage",
			Keywords: []string{"storage", "volume", "pvc", "pv", "persistent"},
			Template: storageTemplate,
		},
		{
			Topic:    "monitoring",
			Keywords: []string{"monitor", "logging", "observability", "metrics"},
			Template: monitoringTemplate,
		},
		{
			Topic:    "namespace",
			Keywords: []string{"namespace"},
			Template: namespaceTemplate,
		},
	}
}
